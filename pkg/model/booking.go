package model

import (
	"time"

	"innkeep/pkg/date"
)

// BookingSnapshot freezes the commercial terms that existed at booking
// time. The fields are plain value copies, never references back to the
// Room or User, so later catalog edits cannot rewrite booking history.
type BookingSnapshot struct {
	UserBalance   int      `json:"user_balance"`
	RoomType      RoomType `json:"room_type"`
	PricePerNight int      `json:"price_per_night"`
}

// Booking records a confirmed stay. Bookings are never updated or
// deleted; IDs are assigned from a process-wide monotonic counter.
type Booking struct {
	ID         int64           `json:"booking_id"`
	UserID     int             `json:"user_id"`
	RoomNumber int             `json:"room_number"`
	CheckIn    date.Date       `json:"check_in"`
	CheckOut   date.Date       `json:"check_out"`
	Nights     int             `json:"nights"`
	TotalCost  int             `json:"total_cost"`
	Snapshot   BookingSnapshot `json:"snapshot"`
	BookedAt   time.Time       `json:"booked_at"`
}

// BookingRequest is the input to the booking engine. Dates are calendar
// dates; a zero date is rejected before the engine runs.
type BookingRequest struct {
	UserID     int       `json:"user_id" validate:"min=1"`
	RoomNumber int       `json:"room_number" validate:"min=1"`
	CheckIn    date.Date `json:"check_in" validate:"required"`
	CheckOut   date.Date `json:"check_out" validate:"required"`
}

// Overlaps reports whether the booking's stay conflicts with the
// requested interval on the same room. Policy is edge-inclusive: stays
// that merely touch (one ends the day the other starts) conflict, so
// same-day turnover is disallowed.
func (b *Booking) Overlaps(checkIn, checkOut date.Date) bool {
	return !(checkOut.Before(b.CheckIn) || checkIn.After(b.CheckOut))
}
