package repository

import (
	hotelerrors "innkeep/internal/hotel/errors"
	"innkeep/pkg/model"
)

// UpsertRoom creates the room on first reference to a new number and
// updates type and price in place thereafter. Rooms are never deleted.
// Returns the stored value and whether it was newly created.
func (s *Store) UpsertRoom(number int, roomType model.RoomType, pricePerNight int) (model.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.roomIndex[number]; ok {
		existing.Type = roomType
		existing.PricePerNight = pricePerNight
		return *existing, false
	}

	room := &model.Room{
		Number:        number,
		Type:          roomType,
		PricePerNight: pricePerNight,
	}
	s.rooms = append(s.rooms, room)
	s.roomIndex[number] = room
	return *room, true
}

func (s *Store) RoomByNumber(number int) (model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.roomIndex[number]
	if !ok {
		return model.Room{}, hotelerrors.ErrRoomNotFound
	}
	return *room, nil
}

// Rooms returns value copies, newest first.
func (s *Store) Rooms() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Room, 0, len(s.rooms))
	for i := len(s.rooms) - 1; i >= 0; i-- {
		out = append(out, *s.rooms[i])
	}
	return out
}

func (tx *Tx) RoomByNumber(number int) (model.Room, error) {
	room, ok := tx.store.roomIndex[number]
	if !ok {
		return model.Room{}, hotelerrors.ErrRoomNotFound
	}
	return *room, nil
}
