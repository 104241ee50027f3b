package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the staff-only catalog management operations. These are
// the only paths that mutate categories and products after seeding.
type AdminUsecase interface {
	// CreateCategory adds a new category.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category and, by cascade, all of its products.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// CreateProduct adds a new product to an existing category.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct overwrites a product's mutable fields.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product. It fails with a referential-integrity
	// error while any order references the product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	CategorySlug string `json:"category_slug" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
	Description  string `json:"description"`
	Price        string `json:"price" validate:"required"`
	ImageURL     string `json:"image_url"`
	IsFeatured   bool   `json:"is_featured"`
	InStock      bool   `json:"in_stock"`
}

// UpdateProductInput defines the mutable product fields. Nil pointers leave
// the current value untouched; in normal operation only the stock and featured
// flags change after creation.
type UpdateProductInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsFeatured  *bool   `json:"is_featured,omitempty"`
	InStock     *bool   `json:"in_stock,omitempty"`
}
