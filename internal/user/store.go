package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("user already exists")
)

// Store defines how user records are stored and retrieved. Users are
// created by signup (or out-of-band admin seeding) and never mutated or
// deleted by this service.
type Store interface {
	// FindByEmail returns the user registered under email (case-insensitive)
	// or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists u and fills in its ID. A concurrent or prior signup
	// with the same email yields ErrDuplicate.
	Create(ctx context.Context, u *User) error

	// ListSafe returns all users with the password hash projected out.
	ListSafe(ctx context.Context) ([]User, error)
}
