package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UserUsecase defines account registration and the token-based session flows.
type UserUsecase interface {
	// Register creates a new account and opens a session.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and opens a session.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair,
	// revoking the presented one.
	Refresh(ctx context.Context, input *RefreshInput) (*AuthOutput, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, input *LogoutInput) error
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginInput defines the credentials for opening a session.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the refresh token to rotate.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutInput carries the refresh token to revoke.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthOutput carries the authenticated user and a fresh token pair.
type AuthOutput struct {
	User         *UserView `json:"user"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// UserView is the outward-facing account representation; it never carries the
// password hash.
type UserView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

// NewUserView maps a user entity to its outward representation.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsStaff:   user.IsStaff,
	}
}
