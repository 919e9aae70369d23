package events

import (
	"context"
	"strconv"

	"innkeep/pkg/model"
)

const (
	EventTypeBookingCreated = "booking.created"

	sourceService = "innkeep"
)

// Publisher emits domain events after state changes. Publishing is
// best-effort: the booking itself is already committed when the event
// goes out, and a publish failure must never fail the booking.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
	Close() error
}

// BookingCreatedEvent is the payload for EventTypeBookingCreated.
type BookingCreatedEvent struct {
	BookingID  int64  `json:"booking_id"`
	UserID     int    `json:"user_id"`
	RoomNumber int    `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	TotalCost  int    `json:"total_cost"`
}

type kafkaPublisher struct {
	producer *Producer
}

func NewKafkaPublisher(brokers []string, topic string) Publisher {
	return &kafkaPublisher{producer: NewProducer(brokers, topic)}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	payload := BookingCreatedEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		RoomNumber: booking.RoomNumber,
		CheckIn:    booking.CheckIn.String(),
		CheckOut:   booking.CheckOut.String(),
		Nights:     booking.Nights,
		TotalCost:  booking.TotalCost,
	}

	// Key by room so events for one room stay ordered.
	msg, err := NewMessage(EventTypeBookingCreated, sourceService, strconv.Itoa(booking.RoomNumber), payload)
	if err != nil {
		return err
	}
	return p.producer.Send(ctx, msg)
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher discards all events; used when eventing is disabled and
// in tests.
type NopPublisher struct{}

func (NopPublisher) BookingCreated(context.Context, *model.Booking) error { return nil }
func (NopPublisher) Close() error                                         { return nil }
