package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Logger:       logger,
	})

	return catalogServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func TestCatalogService_Home_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	featured := []*entity.Product{{ID: uuid.New(), IsFeatured: true}}
	latest := []*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}
	essentials := []*entity.Product{{ID: uuid.New()}}

	fx.productRepo.EXPECT().ListFeatured(ctx, constants.HomeFeaturedLimit).Return(featured, nil)
	fx.productRepo.EXPECT().ListInStock(ctx, "", constants.HomeLatestLimit).Return(latest, nil)
	fx.productRepo.EXPECT().ListInStock(ctx, constants.EssentialsCategorySlug, constants.HomeEssentialsLimit).Return(essentials, nil)
	fx.productRepo.EXPECT().CountInStock(ctx).Return(int64(8), nil)

	output, err := fx.service.Home(ctx)

	require.NoError(t, err)
	assert.Equal(t, featured, output.Featured)
	assert.Equal(t, latest, output.Latest)
	assert.Equal(t, essentials, output.Essentials)
	assert.Equal(t, int64(8), output.TotalProducts)
}

func TestCatalogService_Browse_AllProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}
	categories := []*entity.Category{{ID: uuid.New(), Name: "Audio", Slug: "audio"}}

	fx.productRepo.EXPECT().ListInStock(ctx, "", 0).Return(products, nil)
	fx.categoryRepo.EXPECT().List(ctx).Return(categories, nil)

	output, err := fx.service.Browse(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, products, output.Products)
	assert.Equal(t, categories, output.Categories)
	assert.Equal(t, "", output.ActiveCategory)
}

func TestCatalogService_Browse_FilteredByCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New()}}
	categories := []*entity.Category{{ID: uuid.New(), Name: "Audio", Slug: "audio"}}

	fx.productRepo.EXPECT().ListInStock(ctx, "audio", 0).Return(products, nil)
	fx.categoryRepo.EXPECT().List(ctx).Return(categories, nil)

	output, err := fx.service.Browse(ctx, "audio")

	require.NoError(t, err)
	assert.Equal(t, products, output.Products)
	assert.Equal(t, "audio", output.ActiveCategory)
}

func TestCatalogService_Browse_UnknownCategoryYieldsEmptyList(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categories := []*entity.Category{{ID: uuid.New(), Name: "Audio", Slug: "audio"}}

	fx.productRepo.EXPECT().ListInStock(ctx, "no-such-category", 0).Return([]*entity.Product{}, nil)
	fx.categoryRepo.EXPECT().List(ctx).Return(categories, nil)

	output, err := fx.service.Browse(ctx, "no-such-category")

	require.NoError(t, err)
	assert.Empty(t, output.Products)
}

func TestCatalogService_ProductDetail_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := &entity.Product{
		ID:   uuid.New(),
		Name: "Wireless Headphones",
		Slug: "wireless-headphones",
	}
	related := []*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.productRepo.EXPECT().FindBySlug(ctx, product.Slug).Return(product, nil)
	fx.productRepo.EXPECT().ListRelated(ctx, product, constants.RelatedLimit).Return(related, nil)

	output, err := fx.service.ProductDetail(ctx, product.Slug)

	require.NoError(t, err)
	assert.Equal(t, product, output.Product)
	assert.Equal(t, related, output.Related)
}

func TestCatalogService_ProductDetail_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().FindBySlug(ctx, "no-such-product").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.ProductDetail(ctx, "no-such-product")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
