package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAdminService(AdminServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return adminServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestAdminService_CreateCategory_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateCategoryInput{Name: "  Audio ", Slug: " audio "}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Audio", category.Name)
	assert.Equal(t, "audio", category.Slug)
}

func TestAdminService_CreateCategory_DuplicateSlug(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateCategoryInput{Name: "Audio", Slug: "audio"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).
				Return(errors.Wrap(domainerrors.ErrCategoryAlreadyExists, "slug taken"))

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrCategoryAlreadyExists, "slug taken"))

	_, err := fx.service.CreateCategory(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryAlreadyExists))
}

func TestAdminService_DeleteCategory_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().Delete(ctx, id).Return(repository.ErrCategoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "category does not exist"))

	err := fx.service.DeleteCategory(ctx, id)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAdminService_CreateProduct_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.CreateProductInput{
		CategorySlug: "audio",
		Name:         "Wireless Headphones",
		Slug:         "wireless-headphones",
		Description:  "Over-ear, noise cancelling.",
		Price:        "179.9",
		IsFeatured:   true,
		InStock:      true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockCategoryRepo.EXPECT().FindBySlug(ctx, "audio").
				Return(&entity.Category{ID: categoryID, Name: "Audio", Slug: "audio"}, nil)
			mockProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, categoryID, product.CategoryID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("179.9")))
	assert.True(t, product.IsFeatured)
}

func TestAdminService_CreateProduct_InvalidPrice(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		CategorySlug: "audio",
		Name:         "Wireless Headphones",
		Slug:         "wireless-headphones",
		Price:        "one hundred",
	}

	// No Execute expectation: an unparseable price never reaches the database.
	_, err := fx.service.CreateProduct(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		CategorySlug: "audio",
		Name:         "Wireless Headphones",
		Slug:         "wireless-headphones",
		Price:        "-1.00",
	}

	_, err := fx.service.CreateProduct(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		CategorySlug: "no-such-category",
		Name:         "Wireless Headphones",
		Slug:         "wireless-headphones",
		Price:        "179.00",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().FindBySlug(ctx, "no-such-category").
				Return(nil, repository.ErrCategoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "category does not exist"))

	_, err := fx.service.CreateProduct(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAdminService_UpdateProduct_PartialOverwrite(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	id := uuid.New()
	inStock := false
	input := &usecase.UpdateProductInput{InStock: &inStock}

	existing := &entity.Product{
		ID:      id,
		Name:    "Wireless Headphones",
		Slug:    "wireless-headphones",
		Price:   decimal.RequireFromString("179.00"),
		InStock: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
			mockProductRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, id, input)

	require.NoError(t, err)
	assert.False(t, product.InStock)
	// Fields without an overwrite value stay as they were.
	assert.Equal(t, "Wireless Headphones", product.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("179.00")))
}

func TestAdminService_UpdateProduct_InvalidPrice(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	id := uuid.New()
	badPrice := "free"
	input := &usecase.UpdateProductInput{Price: &badPrice}

	existing := &entity.Product{ID: id, Price: decimal.RequireFromString("179.00")}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrValidationFailed, "price is not a valid decimal"))

	_, err := fx.service.UpdateProduct(ctx, id, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_DeleteProduct_ReferencedByOrders(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().Delete(ctx, id).
				Return(errors.Wrap(domainerrors.ErrProductInUse, "product is referenced by orders"))

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrProductInUse, "product is referenced by orders"))

	err := fx.service.DeleteProduct(ctx, id)

	assert.Error(t, err)
	// The product must survive while an order references it.
	assert.True(t, errors.Is(err, domainerrors.ErrProductInUse))
}

func TestAdminService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().Delete(ctx, id).Return(repository.ErrProductNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "product does not exist"))

	err := fx.service.DeleteProduct(ctx, id)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
