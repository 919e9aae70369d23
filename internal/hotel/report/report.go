// Package report renders the room, booking and user collections as
// plain text, newest first. It is a read-only projection: nothing here
// mutates state or raises domain errors.
package report

import (
	"fmt"
	"io"

	"innkeep/pkg/model"
)

func FormatRoom(r model.Room) string {
	return fmt.Sprintf("Room{Number=%d, Type=%s, Price/Night=%d}", r.Number, r.Type, r.PricePerNight)
}

func FormatUser(u model.User) string {
	return fmt.Sprintf("User{ID=%d, Balance=%d}", u.ID, u.Balance)
}

func FormatBooking(b model.Booking) string {
	return fmt.Sprintf(
		"Booking{ID=%d, User{ID=%d, Balance=%d}, Room{Number=%d, Type=%s, Price=%d}, CheckIn=%s, CheckOut=%s, Nights=%d, TotalCost=%d}",
		b.ID,
		b.UserID, b.Snapshot.UserBalance,
		b.RoomNumber, b.Snapshot.RoomType, b.Snapshot.PricePerNight,
		b.CheckIn, b.CheckOut, b.Nights, b.TotalCost,
	)
}

// WriteRooms renders the room section. Input is expected newest first.
func WriteRooms(w io.Writer, rooms []model.Room) {
	fmt.Fprintln(w, "========== ALL ROOMS (Latest to Oldest) ==========")
	if len(rooms) == 0 {
		fmt.Fprintln(w, "No rooms available")
		return
	}
	for _, r := range rooms {
		fmt.Fprintln(w, FormatRoom(r))
	}
}

func WriteBookings(w io.Writer, bookings []model.Booking) {
	fmt.Fprintln(w, "========== ALL BOOKINGS (Latest to Oldest) ==========")
	if len(bookings) == 0 {
		fmt.Fprintln(w, "No bookings available")
		return
	}
	for _, b := range bookings {
		fmt.Fprintln(w, FormatBooking(b))
	}
}

func WriteUsers(w io.Writer, users []model.User) {
	fmt.Fprintln(w, "========== ALL USERS (Latest to Oldest) ==========")
	if len(users) == 0 {
		fmt.Fprintln(w, "No users available")
		return
	}
	for _, u := range users {
		fmt.Fprintln(w, FormatUser(u))
	}
}

// Write renders all three sections.
func Write(w io.Writer, rooms []model.Room, bookings []model.Booking, users []model.User) {
	WriteRooms(w, rooms)
	fmt.Fprintln(w)
	WriteBookings(w, bookings)
	fmt.Fprintln(w)
	WriteUsers(w, users)
}
