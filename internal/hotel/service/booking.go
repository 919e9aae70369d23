package service

import (
	"context"
	"time"

	"innkeep/internal/hotel/repository"
	"innkeep/pkg/date"
	apperrors "innkeep/pkg/errors"
	"innkeep/pkg/model"
)

// bookingAttempt carries one request through the guard pipeline. Guards
// run in a fixed order and each either fills in state for the next one
// or returns the error kind that aborts the attempt.
type bookingAttempt struct {
	tx  *repository.Tx
	req *model.BookingRequest

	user      model.User
	room      model.Room
	nights    int
	totalCost int
}

// BookRoom validates the requested stay, checks availability and
// affordability, and only then commits: one booking appended, the total
// cost deducted. Every precondition is verified before the first
// mutation, so the commit itself cannot fail and no partial state needs
// undoing. The whole sequence runs under the store's write lock;
// concurrent attempts for the same room are serialized.
func (s *hotelService) BookRoom(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	if err := s.validator.ValidateBookingRequest(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed",
			"user_id", req.UserID,
			"room_number", req.RoomNumber,
			"error", err,
		)
		return nil, validationError("Invalid booking request", err)
	}

	var booking *model.Booking
	err := s.store.ExecuteTransaction(ctx, func(tx *repository.Tx) error {
		attempt := &bookingAttempt{tx: tx, req: req}

		guards := []func() *apperrors.AppError{
			attempt.resolveUser,
			attempt.resolveRoom,
			attempt.checkAvailability,
			attempt.checkFunds,
		}
		for _, guard := range guards {
			if guardErr := guard(); guardErr != nil {
				return guardErr
			}
		}

		booking = attempt.commit(time.Now())
		return nil
	})
	if err != nil {
		s.cfg.Log.Warn("Booking rejected",
			"user_id", req.UserID,
			"room_number", req.RoomNumber,
			"check_in", req.CheckIn,
			"check_out", req.CheckOut,
			"error", err,
		)
		return nil, err
	}

	s.cfg.Log.Info("Booking created",
		"booking_id", booking.ID,
		"user_id", booking.UserID,
		"room_number", booking.RoomNumber,
		"nights", booking.Nights,
		"total_cost", booking.TotalCost,
	)

	if publishErr := s.publisher.BookingCreated(ctx, booking); publishErr != nil {
		// The booking is committed; a lost event must not fail it.
		s.cfg.Log.Error("Failed to publish booking event",
			"booking_id", booking.ID,
			"error", publishErr,
		)
	}

	return booking, nil
}

func (a *bookingAttempt) resolveUser() *apperrors.AppError {
	user, err := a.tx.UserByID(a.req.UserID)
	if err != nil {
		return apperrors.NotFoundWithID("user", a.req.UserID)
	}
	a.user = user
	return nil
}

func (a *bookingAttempt) resolveRoom() *apperrors.AppError {
	room, err := a.tx.RoomByNumber(a.req.RoomNumber)
	if err != nil {
		return apperrors.NotFoundWithID("room", a.req.RoomNumber)
	}
	a.room = room
	return nil
}

func (a *bookingAttempt) checkAvailability() *apperrors.AppError {
	for _, existing := range a.tx.BookingsForRoom(a.req.RoomNumber) {
		if existing.Overlaps(a.req.CheckIn, a.req.CheckOut) {
			return apperrors.RoomUnavailable(
				a.req.RoomNumber,
				a.req.CheckIn.String(),
				a.req.CheckOut.String(),
			)
		}
	}
	return nil
}

func (a *bookingAttempt) checkFunds() *apperrors.AppError {
	a.nights = date.Nights(a.req.CheckIn, a.req.CheckOut)
	a.totalCost = a.nights * a.room.PricePerNight
	if a.user.Balance < a.totalCost {
		return apperrors.InsufficientFunds(a.totalCost, a.user.Balance)
	}
	return nil
}

// commit runs only after every guard has passed; nothing in it can fail.
// The snapshot captures the room's type and price and the user's balance
// as value copies, immutable for the life of the booking.
func (a *bookingAttempt) commit(now time.Time) *model.Booking {
	booking := &model.Booking{
		UserID:     a.user.ID,
		RoomNumber: a.room.Number,
		CheckIn:    a.req.CheckIn,
		CheckOut:   a.req.CheckOut,
		Nights:     a.nights,
		TotalCost:  a.totalCost,
		Snapshot: model.BookingSnapshot{
			UserBalance:   a.user.Balance,
			RoomType:      a.room.Type,
			PricePerNight: a.room.PricePerNight,
		},
		BookedAt: now,
	}

	// Affordability was checked above; the deduction cannot go negative.
	_ = a.tx.DeductBalance(a.user.ID, a.totalCost)
	a.tx.AppendBooking(booking)
	return booking
}

func internalError(message string, err error) *apperrors.AppError {
	return apperrors.Internal(message, err)
}
