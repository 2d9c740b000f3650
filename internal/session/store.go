package session

import (
	"context"
	"time"
)

// TTL is the fixed session lifetime, measured from creation.
const TTL = 5 * time.Hour

// Session represents an authenticated user session. The payload captures
// the user's id and role at creation time; the role is not re-read from
// the user store on later requests.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"` // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
