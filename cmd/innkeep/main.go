package main

import (
	"innkeep/internal/hotel/handler"
	"innkeep/internal/hotel/repository"
	"innkeep/internal/hotel/service"
	"innkeep/internal/hotel/validator"
	"innkeep/pkg/app"
	"innkeep/pkg/config"
	"innkeep/pkg/events"
)

const ServiceName = "innkeep"

func main() {
	cfg := config.Load(ServiceName)
	cfg.LogConfiguration()

	cfg.Log.Info("Starting reservation service")

	hotelService, publisher := initServices(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(cfg.Log),
		handler.NewHotelHandler(hotelService, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.HotelService, events.Publisher) {
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaEnabled {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		cfg.Log.Info("Booking events enabled", "topic", cfg.KafkaTopic)
	}

	store := repository.NewStore()
	hotelValidator := validator.NewHotelValidator(cfg.Log)
	hotelService := service.NewHotelService(store, hotelValidator, publisher, cfg)

	cfg.Log.Info("Hotel service initialized")
	return hotelService, publisher
}
