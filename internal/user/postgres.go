package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/MuhammadZainDev/VOQ-backend/internal/db"
)

// uniqueViolation is the postgres error code raised when the
// users_email_lower_unique index rejects an insert.
const uniqueViolation = "23505"

type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {

	var (
		u  User
		id uuid.UUID
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, number, password_hash, role, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(&id, &u.Name, &u.Email, &u.Number, &u.Password, &u.Role, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	u.ID = id.String()
	return &u, nil
}

func (s *PostgresStore) Create(ctx context.Context, u *User) error {

	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, number, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.Name, u.Email, u.Number, u.Password, u.Role).Scan(&id)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return err
	}

	u.ID = id.String()
	return nil
}

func (s *PostgresStore) ListSafe(ctx context.Context) ([]User, error) {

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, number, role, created_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var (
			u  User
			id uuid.UUID
		)
		if err := rows.Scan(&id, &u.Name, &u.Email, &u.Number, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.ID = id.String()
		users = append(users, u)
	}

	return users, rows.Err()
}
