package auth

import (
	"context"
	"errors"

	"github.com/MuhammadZainDev/VOQ-backend/internal/auth/credentials"
	"github.com/MuhammadZainDev/VOQ-backend/internal/user"
)

var (
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so responses never reveal which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	users user.Store
}

func NewService(users user.Store) *Service {
	return &Service{users: users}
}

// Signup registers a new account with role USER. The pre-check keeps the
// common case cheap; the store's uniqueness guarantee decides the race
// between two concurrent signups for the same email.
func (s *Service) Signup(
	ctx context.Context,
	name string,
	email string,
	number string,
	password string,
) (*user.User, error) {

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	hash, err := credentials.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Name:     name,
		Email:    email,
		Number:   number,
		Password: hash,
		Role:     user.RoleUser,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	return u, nil
}

// Login authenticates email + password and returns the stored user record.
// The session role must come from this record, never from the caller.
func (s *Service) Login(
	ctx context.Context,
	email string,
	password string,
) (*user.User, error) {

	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := credentials.VerifyPassword(u.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
