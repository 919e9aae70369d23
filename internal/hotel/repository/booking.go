package repository

import "innkeep/pkg/model"

// Bookings returns value copies, newest first.
func (s *Store) Bookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Booking, 0, len(s.bookings))
	for i := len(s.bookings) - 1; i >= 0; i-- {
		out = append(out, *s.bookings[i])
	}
	return out
}

func (s *Store) BookingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bookings)
}

// BookingsForRoom returns copies of all bookings recorded for the room,
// in insertion order.
func (tx *Tx) BookingsForRoom(roomNumber int) []model.Booking {
	var out []model.Booking
	for _, b := range tx.store.bookings {
		if b.RoomNumber == roomNumber {
			out = append(out, *b)
		}
	}
	return out
}

// AppendBooking assigns the next sequential booking ID, stores a copy
// and returns the assigned ID. The counter is process-wide, monotonic
// and never reset.
func (tx *Tx) AppendBooking(booking *model.Booking) int64 {
	tx.store.nextBookingID++
	booking.ID = tx.store.nextBookingID

	stored := *booking
	tx.store.bookings = append(tx.store.bookings, &stored)
	return booking.ID
}
