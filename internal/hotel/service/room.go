package service

import (
	"context"

	apperrors "innkeep/pkg/errors"
	"innkeep/pkg/model"
)

// SetRoom creates the room on first reference or updates its type and
// price in place. Snapshots inside existing bookings are value copies,
// so a catalog update never rewrites booking history.
func (s *hotelService) SetRoom(ctx context.Context, number int, roomType model.RoomType, pricePerNight int) (*model.Room, error) {
	room := &model.Room{
		Number:        number,
		Type:          roomType,
		PricePerNight: pricePerNight,
	}
	if err := s.validator.ValidateRoom(room); err != nil {
		s.cfg.Log.Warn("Room validation failed", "room_number", number, "error", err)
		return nil, validationError("Invalid room", err)
	}

	stored, created := s.store.UpsertRoom(number, roomType, pricePerNight)
	if created {
		s.cfg.Log.Info("Room created",
			"room_number", stored.Number,
			"room_type", stored.Type,
			"price_per_night", stored.PricePerNight,
		)
	} else {
		s.cfg.Log.Info("Room updated",
			"room_number", stored.Number,
			"room_type", stored.Type,
			"price_per_night", stored.PricePerNight,
		)
	}
	return &stored, nil
}

func validationError(message string, err error) *apperrors.AppError {
	type fielded interface{ Fields() map[string]any }
	if f, ok := err.(fielded); ok {
		return apperrors.Validation(message, f.Fields())
	}
	return apperrors.Validation(message, map[string]any{"error": err.Error()})
}
