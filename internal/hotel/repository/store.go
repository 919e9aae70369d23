// Package repository implements the entity store: the three in-memory
// collections (rooms, users, bookings) with identity lookups. All state
// is process-lifetime and discarded on shutdown; there is no business
// logic here.
package repository

import (
	"context"
	"sync"

	"innkeep/pkg/model"
)

// Store owns the collections exclusively. A single RWMutex guards all
// three so that a booking's check-then-commit sequence can run atomically
// via ExecuteTransaction. Collections keep insertion order; listings
// return copies in reverse insertion order (newest first).
type Store struct {
	mu sync.RWMutex

	rooms     []*model.Room
	roomIndex map[int]*model.Room

	users     []*model.User
	userIndex map[int]*model.User

	bookings      []*model.Booking
	nextBookingID int64
}

func NewStore() *Store {
	return &Store{
		roomIndex: make(map[int]*model.Room),
		userIndex: make(map[int]*model.User),
	}
}

// Tx exposes the store under an already-held write lock. Tx methods must
// only be called inside an ExecuteTransaction callback.
type Tx struct {
	store *Store
}

// ExecuteTransaction runs fn while holding the write lock, serializing
// concurrent booking attempts so that an availability check and the
// commit it guards cannot interleave with another writer.
func (s *Store) ExecuteTransaction(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&Tx{store: s})
}
