package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user has no profile record yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for the per-user shipping profile.
type ProfileRepository interface {
	// FindByUserID retrieves the profile belonging to the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Save creates the profile when absent or overwrites it otherwise.
	Save(ctx context.Context, profile *entity.Profile) error
}
