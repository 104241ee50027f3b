// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a single purchasable item. It belongs to exactly one category
// and is removed together with it; a product referenced by any order is
// protected from deletion instead.
type Product struct {
	ID          uuid.UUID       // The unique identifier for the product.
	CategoryID  uuid.UUID       // The owning category.
	Category    *Category       // Preloaded owning category, nil when not fetched.
	Name        string          // Display name.
	Slug        string          // URL-safe identifier, unique.
	Description string          // Free-form description text.
	Price       decimal.Decimal // Current list price, non-negative, two decimal places.
	ImageURL    string          // Optional hero image location.
	IsFeatured  bool            // Shown in the featured section of the home page.
	InStock     bool            // Only in-stock products are listed and purchasable.
	CreatedAt   time.Time       // Timestamp of creation; listings order newest first.
}
