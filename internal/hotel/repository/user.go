package repository

import (
	hotelerrors "innkeep/internal/hotel/errors"
	"innkeep/pkg/model"
)

// CreateUser adds a user once per identifier. A second create for the
// same ID returns ErrUserExists and leaves the stored balance untouched.
func (s *Store) CreateUser(id, balance int) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.userIndex[id]; ok {
		return *existing, hotelerrors.ErrUserExists
	}

	user := &model.User{ID: id, Balance: balance}
	s.users = append(s.users, user)
	s.userIndex[id] = user
	return *user, nil
}

func (s *Store) UserByID(id int) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.userIndex[id]
	if !ok {
		return model.User{}, hotelerrors.ErrUserNotFound
	}
	return *user, nil
}

// Users returns value copies, newest first.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0, len(s.users))
	for i := len(s.users) - 1; i >= 0; i-- {
		out = append(out, *s.users[i])
	}
	return out
}

func (tx *Tx) UserByID(id int) (model.User, error) {
	user, ok := tx.store.userIndex[id]
	if !ok {
		return model.User{}, hotelerrors.ErrUserNotFound
	}
	return *user, nil
}

// DeductBalance reduces the user's balance, refusing any deduction that
// would leave it negative.
func (tx *Tx) DeductBalance(id, amount int) error {
	user, ok := tx.store.userIndex[id]
	if !ok {
		return hotelerrors.ErrUserNotFound
	}
	if amount > user.Balance {
		return hotelerrors.ErrInsufficientBalance
	}
	user.Balance -= amount
	return nil
}
