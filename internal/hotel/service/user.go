package service

import (
	"context"
	"errors"

	hotelerrors "innkeep/internal/hotel/errors"
	"innkeep/pkg/model"
)

// SetUser creates a user once per identifier. A repeat call for an
// existing ID is a successful no-op and never updates the balance:
// creation is idempotent by identity, not an upsert.
func (s *hotelService) SetUser(ctx context.Context, id, balance int) (*model.User, error) {
	user := &model.User{ID: id, Balance: balance}
	if err := s.validator.ValidateUser(user); err != nil {
		s.cfg.Log.Warn("User validation failed", "user_id", id, "error", err)
		return nil, validationError("Invalid user", err)
	}

	stored, err := s.store.CreateUser(id, balance)
	if err != nil {
		if errors.Is(err, hotelerrors.ErrUserExists) {
			s.cfg.Log.Info("User already exists, balance unchanged",
				"user_id", id,
				"balance", stored.Balance,
			)
			return &stored, nil
		}
		return nil, internalError("Failed to create user", err)
	}

	s.cfg.Log.Info("User created", "user_id", stored.ID, "balance", stored.Balance)
	return &stored, nil
}
