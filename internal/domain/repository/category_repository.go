package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category slug or id resolves to nothing.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the operations for catalog categories.
type CategoryRepository interface {
	// List retrieves every category ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindBySlug retrieves a single category by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Delete removes a category and, via the cascade rule, all of its products.
	Delete(ctx context.Context, id uuid.UUID) error
}
