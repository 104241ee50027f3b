// Package entity contains the core business objects of the storefront.
package entity

import (
	"github.com/google/uuid"
)

// Category groups products for catalog browsing. Deleting a category deletes
// every product in it; the persistence layer enforces the cascade.
type Category struct {
	ID   uuid.UUID // The unique identifier for the category.
	Name string    // Human-readable name, unique and non-empty.
	Slug string    // URL-safe identifier, unique.
}
