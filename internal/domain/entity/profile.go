// Package entity contains the core business objects of the storefront.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCountry is applied whenever a profile is created or updated with an
// empty country field.
const DefaultCountry = "India"

// Profile holds the shipping details kept per user, used to prefill the
// checkout form. One profile exists per user, created lazily on first use.
type Profile struct {
	UserID       uuid.UUID // The owning user. One profile per user.
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Pincode      string
	Country      string // Defaults to DefaultCountry when left empty.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProfile returns an empty profile for the user with the country default
// applied.
func NewProfile(userID uuid.UUID) *Profile {
	return &Profile{
		UserID:  userID,
		Country: DefaultCountry,
	}
}

// FullAddress is the derived mailing address: the ordered, comma-joined
// concatenation of the address parts with empty components skipped. It is
// never persisted.
func (p *Profile) FullAddress() string {
	parts := []string{
		p.AddressLine1,
		p.AddressLine2,
		p.City,
		p.State,
		p.Pincode,
		p.Country,
	}

	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, ", ")
}
