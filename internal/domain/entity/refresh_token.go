package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents one login session. Only a hash of the issued token
// is kept; presenting a refresh token exchanges it for a new pair.
type RefreshToken struct {
	ID        uuid.UUID // The unique identifier for the session record.
	UserID    uuid.UUID // The user this session belongs to.
	TokenHash string    // SHA-256 hash of the refresh token string.
	ExpiresAt time.Time // After this instant the session is dead.
	CreatedAt time.Time
}

// Expired reports whether the session has passed its expiry.
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
