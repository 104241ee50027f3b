package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Refresh-token errors surfaced by the persistence layer.
var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
)

// RefreshTokenRepository defines the operations for login sessions.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, opening a session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a session by the hash of its token string.
	// Expired sessions yield ErrRefreshTokenExpired.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash removes a session by token hash, ending it.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes every session of one user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
