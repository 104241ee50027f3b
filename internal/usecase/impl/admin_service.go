// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory adds a new category to the catalog.
func (srv *adminService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name: strings.TrimSpace(input.Name),
		Slug: strings.TrimSpace(input.Slug),
	}

	srv.log(ctx).Info("Creating category", slog.String("slug", category.Slug))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CategoryRepo().Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// DeleteCategory removes a category; the database cascade removes its products.
func (srv *adminService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting category", slog.String("id", id.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CategoryRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "category does not exist")
			}

			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// CreateProduct adds a new product beneath an existing category.
func (srv *adminService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating product", slog.String("slug", input.Slug))

	var product *entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		category, err := repoFactory.CategoryRepo().FindBySlug(ctx, strings.TrimSpace(input.CategorySlug))
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "category does not exist")
			}

			return errors.Wrap(err, "failed to find category")
		}

		product = &entity.Product{
			CategoryID:  category.ID,
			Name:        strings.TrimSpace(input.Name),
			Slug:        strings.TrimSpace(input.Slug),
			Description: strings.TrimSpace(input.Description),
			Price:       price,
			ImageURL:    strings.TrimSpace(input.ImageURL),
			IsFeatured:  input.IsFeatured,
			InStock:     input.InStock,
		}
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct overwrites the fields present in the input and leaves the rest
// untouched.
func (srv *adminService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.String("id", id.String()))

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "product does not exist")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if input.Name != nil {
			found.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			found.Description = strings.TrimSpace(*input.Description)
		}
		if input.Price != nil {
			price, err := parsePrice(*input.Price)
			if err != nil {
				return err
			}
			found.Price = price
		}
		if input.ImageURL != nil {
			found.ImageURL = strings.TrimSpace(*input.ImageURL)
		}
		if input.IsFeatured != nil {
			found.IsFeatured = *input.IsFeatured
		}
		if input.InStock != nil {
			found.InStock = *input.InStock
		}

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product. The protective foreign key on orders turns
// the delete into a conflict while any order still references it.
func (srv *adminService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.String("id", id.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "product does not exist")
			}

			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// parsePrice converts the request's decimal string into a non-negative amount
// with two fractional digits.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, errors.Wrap(domainerrors.ErrValidationFailed, "price is not a valid decimal")
	}
	if price.IsNegative() {
		return decimal.Zero, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}

	return price.Round(2), nil
}
