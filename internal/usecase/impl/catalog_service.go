// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. Browsing is
// read-only, so the repositories are used directly without a transaction.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Home assembles the landing-page sections from in-stock products.
func (srv *catalogService) Home(ctx context.Context) (*usecase.HomeOutput, error) {
	srv.log(ctx).Debug("Building home page")

	featured, err := srv.productRepo.ListFeatured(ctx, constants.HomeFeaturedLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	latest, err := srv.productRepo.ListInStock(ctx, "", constants.HomeLatestLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest products")
	}

	essentials, err := srv.productRepo.ListInStock(ctx, constants.EssentialsCategorySlug, constants.HomeEssentialsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list essentials")
	}

	total, err := srv.productRepo.CountInStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	return &usecase.HomeOutput{
		Featured:      featured,
		Latest:        latest,
		Essentials:    essentials,
		TotalProducts: total,
	}, nil
}

// Browse lists in-stock products, optionally filtered by category slug, along
// with all categories for the filter bar.
func (srv *catalogService) Browse(ctx context.Context, categorySlug string) (*usecase.BrowseOutput, error) {
	srv.log(ctx).Debug("Browsing catalog", slog.String("category", categorySlug))

	products, err := srv.productRepo.ListInStock(ctx, categorySlug, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &usecase.BrowseOutput{
		Products:       products,
		Categories:     categories,
		ActiveCategory: categorySlug,
	}, nil
}

// ProductDetail returns one product with up to four in-stock products from the
// same category, excluding itself. The product itself is shown regardless of
// stock state.
func (srv *catalogService) ProductDetail(ctx context.Context, slug string) (*usecase.ProductDetailOutput, error) {
	srv.log(ctx).Debug("Getting product detail", slog.String("slug", slug))

	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	related, err := srv.productRepo.ListRelated(ctx, product, constants.RelatedLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list related products")
	}

	return &usecase.ProductDetailOutput{
		Product: product,
		Related: related,
	}, nil
}
