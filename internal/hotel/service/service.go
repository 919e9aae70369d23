// Package service implements the booking engine and its surrounding
// operations: the room catalog, user creation, and the read-only
// listings. All business rules live here; the store below holds state
// and the handlers above only translate the wire format.
package service

import (
	"context"

	"innkeep/internal/hotel/repository"
	"innkeep/internal/hotel/validator"
	"innkeep/pkg/config"
	"innkeep/pkg/events"
	"innkeep/pkg/model"
)

type HotelService interface {
	SetRoom(ctx context.Context, number int, roomType model.RoomType, pricePerNight int) (*model.Room, error)
	SetUser(ctx context.Context, id, balance int) (*model.User, error)
	BookRoom(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	ListRooms(ctx context.Context) []model.Room
	ListUsers(ctx context.Context) []model.User
	ListBookings(ctx context.Context) []model.Booking
}

type hotelService struct {
	store     *repository.Store
	validator *validator.HotelValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewHotelService(
	store *repository.Store,
	validator *validator.HotelValidator,
	publisher events.Publisher,
	cfg *config.Config,
) HotelService {
	return &hotelService{
		store:     store,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}
