// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the identity at the heart of the system. Orders and profiles hang
// off a user; authentication credentials are stored alongside it.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Login handle, unique across the system.
	Email        string    // Contact email. May be empty; overwritten freely from the profile form.
	FirstName    string    // Optional given name.
	LastName     string    // Optional family name.
	PasswordHash string    // bcrypt hash of the login password. Never exposed outward.
	IsStaff      bool      // Grants access to the administrative catalog routes.
	Profile      *Profile  // Lazily created profile. Nil until first checkout or profile visit.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// DisplayName returns the user's full name, falling back to the username when
// no name components are set.
func (u *User) DisplayName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full == "" {
		return u.Username
	}

	return full
}

// Roles returns the role claims carried by this user's tokens.
func (u *User) Roles() []string {
	if u.IsStaff {
		return []string{RoleStaff}
	}

	return nil
}

// RoleStaff marks users allowed to manage the catalog.
const RoleStaff = "staff"
