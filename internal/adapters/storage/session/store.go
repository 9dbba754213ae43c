package session

import (
	"context"
	"time"
)

// TTL is the fixed session lifetime from issuance.
const TTL = 3 * time.Hour

// Session is a server-side login record keyed by the cookie-carried token.
type Session struct {
	Token     string
	AdminID   string
	Email     string
	CreatedAt time.Time
}

// IsExpired reports whether the session has passed its fixed lifetime.
// INVARIANT: Session fields are not mutated
func (s Session) IsExpired(now time.Time) bool {
	return now.Sub(s.CreatedAt) > TTL
}

// Store persists Session state.
type Store interface {
	Create(ctx context.Context, adminID, email string) (string, error)
	Get(ctx context.Context, token string) (Session, bool)
	Delete(ctx context.Context, token string) error
}
