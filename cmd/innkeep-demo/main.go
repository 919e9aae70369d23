// Command innkeep-demo drives the reservation service in-process
// through a scripted scenario and prints the resulting report, followed
// by a short bank account statement demo.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"innkeep/internal/hotel/repository"
	"innkeep/internal/hotel/report"
	"innkeep/internal/hotel/service"
	"innkeep/internal/hotel/validator"
	"innkeep/internal/ledger"
	"innkeep/pkg/config"
	"innkeep/pkg/date"
	"innkeep/pkg/events"
	"innkeep/pkg/logger"
	"innkeep/pkg/model"
)

func main() {
	cfg := &config.Config{
		Log: logger.New(logger.Config{
			Level:   logger.LevelWarn,
			Format:  logger.FormatText,
			Output:  os.Stderr,
			Service: "innkeep-demo",
		}),
	}

	store := repository.NewStore()
	svc := service.NewHotelService(store, validator.NewHotelValidator(cfg.Log), events.NopPublisher{}, cfg)
	ctx := context.Background()

	fmt.Println("========== CREATING ROOMS ==========")
	setRoom(ctx, svc, 1, model.RoomTypeStandard, 1000)
	setRoom(ctx, svc, 2, model.RoomTypeJunior, 2000)
	setRoom(ctx, svc, 3, model.RoomTypeMaster, 3000)

	fmt.Println("\n========== CREATING USERS ==========")
	setUser(ctx, svc, 1, 5000)
	setUser(ctx, svc, 2, 10000)

	fmt.Println("\n========== BOOKING ATTEMPTS ==========")
	// User 1, Room 2, 7 nights: costs 14000, exceeds the 5000 balance.
	bookRoom(ctx, svc, 1, 2, date.New(2026, time.June, 30), date.New(2026, time.July, 7))
	// Inverted dates.
	bookRoom(ctx, svc, 1, 2, date.New(2026, time.July, 7), date.New(2026, time.June, 30))
	// User 1, Room 1, 1 night: succeeds.
	bookRoom(ctx, svc, 1, 1, date.New(2026, time.July, 7), date.New(2026, time.July, 8))
	// User 2, Room 1, overlapping stay: rejected.
	bookRoom(ctx, svc, 2, 1, date.New(2026, time.July, 7), date.New(2026, time.July, 9))
	// User 2, Room 3, 1 night: succeeds.
	bookRoom(ctx, svc, 2, 3, date.New(2026, time.July, 7), date.New(2026, time.July, 8))

	fmt.Println("\n========== UPDATING ROOM 1 ==========")
	// Must not affect the existing booking's snapshot.
	setRoom(ctx, svc, 1, model.RoomTypeMaster, 10000)

	fmt.Println()
	report.Write(os.Stdout, svc.ListRooms(ctx), svc.ListBookings(ctx), svc.ListUsers(ctx))

	fmt.Println("\n========== BANK ACCOUNT STATEMENT ==========")
	bankDemo()
}

func setRoom(ctx context.Context, svc service.HotelService, number int, roomType model.RoomType, price int) {
	if _, err := svc.SetRoom(ctx, number, roomType, price); err != nil {
		fmt.Printf("Error setting room %d: %v\n", number, err)
		return
	}
	fmt.Printf("Room %d set: %s at %d/night\n", number, roomType, price)
}

func setUser(ctx context.Context, svc service.HotelService, id, balance int) {
	user, err := svc.SetUser(ctx, id, balance)
	if err != nil {
		fmt.Printf("Error creating user %d: %v\n", id, err)
		return
	}
	fmt.Printf("User %d ready with balance %d\n", user.ID, user.Balance)
}

func bookRoom(ctx context.Context, svc service.HotelService, userID, roomNumber int, checkIn, checkOut date.Date) {
	booking, err := svc.BookRoom(ctx, &model.BookingRequest{
		UserID:     userID,
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		fmt.Printf("Booking failed: %v\n", err)
		return
	}
	fmt.Printf("Booking successful! User %d booked Room %d for %d nights. Total cost: %d\n",
		userID, roomNumber, booking.Nights, booking.TotalCost)
}

func bankDemo() {
	account := ledger.NewAccount()

	deposits := []struct {
		amount int
		on     date.Date
	}{
		{1000, date.New(2012, time.January, 10)},
		{2000, date.New(2012, time.January, 13)},
	}
	for _, d := range deposits {
		if err := account.Deposit(d.amount, d.on); err != nil {
			fmt.Printf("Deposit failed: %v\n", err)
		}
	}
	if err := account.Withdraw(500, date.New(2012, time.January, 14)); err != nil {
		fmt.Printf("Withdrawal failed: %v\n", err)
	}

	account.WriteStatement(os.Stdout)
	fmt.Printf("Current balance: %d, transactions: %d\n", account.Balance(), account.TransactionCount())
}
