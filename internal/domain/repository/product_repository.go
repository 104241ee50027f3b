package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product slug or id resolves to nothing,
// including when checkout asks for a product that is out of stock.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for catalog products.
type ProductRepository interface {
	// FindByID retrieves a single product by its id regardless of stock state.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a single product by its slug regardless of stock
	// state, preloading its category.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindInStockBySlug retrieves a single in-stock product by its slug.
	// Out-of-stock products yield ErrProductNotFound.
	FindInStockBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// ListFeatured retrieves in-stock featured products, newest first, capped at limit.
	ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error)

	// ListInStock retrieves in-stock products newest first, optionally filtered
	// by category slug (empty means all categories), capped at limit
	// (limit <= 0 means no cap).
	ListInStock(ctx context.Context, categorySlug string, limit int) ([]*entity.Product, error)

	// ListRelated retrieves in-stock products sharing the given product's
	// category, excluding the product itself, capped at limit.
	ListRelated(ctx context.Context, product *entity.Product, limit int) ([]*entity.Product, error)

	// CountInStock reports how many products are currently in stock.
	CountInStock(ctx context.Context) (int64, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product (price, flags, description and so on).
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. The protective foreign key on orders makes this
	// fail while any order references the product.
	Delete(ctx context.Context, id uuid.UUID) error
}
