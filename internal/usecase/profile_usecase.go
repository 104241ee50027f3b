package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the user with their profile, creating an empty
	// profile on first visit.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile unconditionally overwrites the user's name components,
	// email and every profile field with the supplied values.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) error
}

// UpdateProfileInput defines the data required to update a profile. Every field
// is an overwrite value; empty strings are valid everywhere except Country,
// which falls back to the default when empty after trimming.
type UpdateProfileInput struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country"`
}
