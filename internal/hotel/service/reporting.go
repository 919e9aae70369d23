package service

import (
	"context"

	"innkeep/pkg/model"
)

// Listings are pure reads over the store, newest first. They never fail:
// an empty collection is an empty slice, which the report layer renders
// with an explicit "none" marker.

func (s *hotelService) ListRooms(ctx context.Context) []model.Room {
	return s.store.Rooms()
}

func (s *hotelService) ListUsers(ctx context.Context) []model.User {
	return s.store.Users()
}

func (s *hotelService) ListBookings(ctx context.Context) []model.Booking {
	return s.store.Bookings()
}
