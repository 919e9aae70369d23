package model

// User holds a balance that only ever decreases, through the booking
// commit. Creation is idempotent by ID: a repeat creation request is a
// no-op, never an update.
type User struct {
	ID      int `json:"user_id" validate:"min=1"`
	Balance int `json:"balance" validate:"min=0"`
}
