// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the read-only storefront browsing operations.
// Results are recomputed on every call; no cursor state is retained.
type CatalogUsecase interface {
	// Home assembles the landing-page sections.
	Home(ctx context.Context) (*HomeOutput, error)

	// Browse lists in-stock products, optionally filtered by category slug.
	Browse(ctx context.Context, categorySlug string) (*BrowseOutput, error)

	// ProductDetail returns one product with its related products.
	ProductDetail(ctx context.Context, slug string) (*ProductDetailOutput, error)
}

// HomeOutput carries the landing-page sections.
type HomeOutput struct {
	Featured      []*entity.Product
	Latest        []*entity.Product
	Essentials    []*entity.Product
	TotalProducts int64
}

// BrowseOutput carries a filterable product listing alongside all categories.
type BrowseOutput struct {
	Products       []*entity.Product
	Categories     []*entity.Category
	ActiveCategory string
}

// ProductDetailOutput carries a product page with its related products.
type ProductDetailOutput struct {
	Product *entity.Product
	Related []*entity.Product
}
