package validator

import (
	"strings"
	"testing"
	"time"

	"innkeep/pkg/date"
	"innkeep/pkg/logger"
	"innkeep/pkg/model"
)

func newTestValidator() *HotelValidator {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.FormatJSON,
		Service: "test",
	})
	return NewHotelValidator(log)
}

func TestValidateRoom(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		room      *model.Room
		wantError string
	}{
		{
			name: "valid standard room",
			room: &model.Room{Number: 1, Type: model.RoomTypeStandard, PricePerNight: 1000},
		},
		{
			name: "zero price is allowed",
			room: &model.Room{Number: 2, Type: model.RoomTypeJunior, PricePerNight: 0},
		},
		{
			name:      "negative price",
			room:      &model.Room{Number: 1, Type: model.RoomTypeMaster, PricePerNight: -1},
			wantError: "PricePerNight",
		},
		{
			name:      "unknown room type",
			room:      &model.Room{Number: 1, Type: "PENTHOUSE", PricePerNight: 1000},
			wantError: "Type",
		},
		{
			name:      "non-positive room number",
			room:      &model.Room{Number: 0, Type: model.RoomTypeStandard, PricePerNight: 1000},
			wantError: "Number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRoom(tt.room)
			if tt.wantError == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("expected error mentioning %s, got %v", tt.wantError, err)
			}
		})
	}
}

func TestValidateUser(t *testing.T) {
	v := newTestValidator()

	if err := v.ValidateUser(&model.User{ID: 1, Balance: 5000}); err != nil {
		t.Errorf("expected valid user, got %v", err)
	}
	if err := v.ValidateUser(&model.User{ID: 1, Balance: 0}); err != nil {
		t.Errorf("expected zero balance to be valid, got %v", err)
	}
	if err := v.ValidateUser(&model.User{ID: 1, Balance: -100}); err == nil {
		t.Error("expected error for negative balance")
	}
	if err := v.ValidateUser(&model.User{ID: 0, Balance: 100}); err == nil {
		t.Error("expected error for non-positive user ID")
	}
}

func TestValidateBookingRequest(t *testing.T) {
	v := newTestValidator()
	checkIn := date.New(2026, time.July, 7)

	tests := []struct {
		name      string
		req       *model.BookingRequest
		wantError bool
	}{
		{
			name: "valid one-night stay",
			req: &model.BookingRequest{
				UserID:     1,
				RoomNumber: 1,
				CheckIn:    checkIn,
				CheckOut:   checkIn.AddDays(1),
			},
		},
		{
			name: "check-out equal to check-in",
			req: &model.BookingRequest{
				UserID:     1,
				RoomNumber: 1,
				CheckIn:    checkIn,
				CheckOut:   checkIn,
			},
			wantError: true,
		},
		{
			name: "check-out before check-in",
			req: &model.BookingRequest{
				UserID:     1,
				RoomNumber: 1,
				CheckIn:    checkIn,
				CheckOut:   checkIn.AddDays(-7),
			},
			wantError: true,
		},
		{
			name: "missing check-in",
			req: &model.BookingRequest{
				UserID:     1,
				RoomNumber: 1,
				CheckOut:   checkIn,
			},
			wantError: true,
		},
		{
			name: "missing user",
			req: &model.BookingRequest{
				RoomNumber: 1,
				CheckIn:    checkIn,
				CheckOut:   checkIn.AddDays(1),
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBookingRequest(tt.req)
			if tt.wantError && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidationErrors_Fields(t *testing.T) {
	errs := ValidationErrors{
		{Field: "PricePerNight", Message: "PricePerNight must be at least 0"},
	}

	fields := errs.Fields()
	if fields["PricePerNight"] != "PricePerNight must be at least 0" {
		t.Errorf("unexpected fields map: %v", fields)
	}
	if !strings.Contains(errs.Error(), "1 error(s)") {
		t.Errorf("unexpected error string: %s", errs.Error())
	}
}
