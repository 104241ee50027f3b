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
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		Logger:    logger,
	})

	return checkoutServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func TestCheckoutService_InitiateCheckout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:      uuid.New(),
		Name:    "Wireless Headphones",
		Slug:    "wireless-headphones",
		Price:   decimal.RequireFromString("179.00"),
		InStock: true,
	}
	user := &entity.User{
		ID:        userID,
		Username:  "asha",
		Email:     "asha@example.com",
		FirstName: "Asha",
		LastName:  "Rao",
	}
	profile := &entity.Profile{
		UserID:       userID,
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		Country:      entity.DefaultCountry,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProductRepo.EXPECT().FindInStockBySlug(ctx, product.Slug).Return(product, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.InitiateCheckout(ctx, userID, product.Slug)

	require.NoError(t, err)
	assert.Equal(t, product, output.Product)
	assert.Equal(t, "Asha Rao", output.InitialName)
	assert.Equal(t, "asha@example.com", output.InitialEmail)
	assert.Equal(t, "12 MG Road, Bengaluru, India", output.InitialAddress)
}

func TestCheckoutService_InitiateCheckout_CreatesProfileOnFirstUse(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:      uuid.New(),
		Slug:    "usb-c-hub",
		Price:   decimal.RequireFromString("49.00"),
		InStock: true,
	}
	user := &entity.User{
		ID:       userID,
		Username: "asha",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProductRepo.EXPECT().FindInStockBySlug(ctx, product.Slug).Return(product, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
			mockProfileRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					assert.Equal(t, userID, profile.UserID)
					assert.Equal(t, entity.DefaultCountry, profile.Country)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.InitiateCheckout(ctx, userID, product.Slug)

	require.NoError(t, err)
	// No name components: the username is the fallback.
	assert.Equal(t, "asha", output.InitialName)
	// A fresh profile carries only the country default.
	assert.Equal(t, entity.DefaultCountry, output.InitialAddress)
}

func TestCheckoutService_InitiateCheckout_ProductNotFound(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
			mockFactory.EXPECT().ProfileRepo().Return(mockRepo.NewMockProfileRepository(t))
			mockProductRepo.EXPECT().FindInStockBySlug(ctx, "sold-out").Return(nil, repository.ErrProductNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "product not found"))

	_, err := fx.service.InitiateCheckout(ctx, userID, "sold-out")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCheckoutService_SubmitCheckout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	product := &entity.Product{
		ID:      uuid.New(),
		Slug:    "smart-watch",
		Price:   decimal.RequireFromString("229.00"),
		InStock: true,
	}
	input := &usecase.SubmitCheckoutInput{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Address:       "12 MG Road, Bengaluru",
		PaymentMethod: "UPI",
	}

	var created *entity.Order

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockProductRepo.EXPECT().FindInStockBySlug(ctx, product.Slug).Return(product, nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = orderID
					created = order
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	id, err := fx.service.SubmitCheckout(ctx, userID, product.Slug, input)

	require.NoError(t, err)
	assert.Equal(t, orderID, id)
	require.NotNil(t, created)
	assert.Equal(t, userID, created.CustomerID)
	assert.Equal(t, product.ID, created.ProductID)
	assert.Equal(t, entity.PaymentMethodUPI, created.PaymentMethod)
	// The amount is snapshotted from the product's current price.
	assert.True(t, created.Amount.Equal(product.Price))
}

func TestCheckoutService_SubmitCheckout_BlankFieldRejected(t *testing.T) {
	valid := usecase.SubmitCheckoutInput{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Address:       "12 MG Road",
		PaymentMethod: "UPI",
	}

	tests := []struct {
		name   string
		mutate func(input *usecase.SubmitCheckoutInput)
	}{
		{"blank full name", func(input *usecase.SubmitCheckoutInput) { input.FullName = "" }},
		{"whitespace full name", func(input *usecase.SubmitCheckoutInput) { input.FullName = "   " }},
		{"blank email", func(input *usecase.SubmitCheckoutInput) { input.Email = "" }},
		{"whitespace email", func(input *usecase.SubmitCheckoutInput) { input.Email = " \t " }},
		{"blank address", func(input *usecase.SubmitCheckoutInput) { input.Address = "" }},
		{"whitespace address", func(input *usecase.SubmitCheckoutInput) { input.Address = "   " }},
		{"blank payment method", func(input *usecase.SubmitCheckoutInput) { input.PaymentMethod = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)

			input := valid
			tt.mutate(&input)

			// No Execute expectation: a blank field must not open a transaction.
			_, err := fx.service.SubmitCheckout(context.Background(), uuid.New(), "smart-watch", &input)

			assert.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCheckoutService_SubmitCheckout_UnknownPaymentMethod(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := &usecase.SubmitCheckoutInput{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Address:       "12 MG Road",
		PaymentMethod: "Barter",
	}

	_, err := fx.service.SubmitCheckout(ctx, uuid.New(), "smart-watch", input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCheckoutService_SubmitCheckout_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	orderID := uuid.New()
	product := &entity.Product{
		ID:      uuid.New(),
		Slug:    "smart-watch",
		Price:   decimal.RequireFromString("229.00"),
		InStock: true,
	}
	input := &usecase.SubmitCheckoutInput{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Address:       "12 MG Road",
		PaymentMethod: "COD",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockProductRepo.EXPECT().FindInStockBySlug(ctx, product.Slug).Return(product, nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = orderID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unavailable"))

	id, err := fx.service.SubmitCheckout(ctx, uuid.New(), product.Slug, input)

	require.NoError(t, err)
	assert.Equal(t, orderID, id)
}

func TestCheckoutService_GetOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	expectedOrder := &entity.Order{
		ID:         orderID,
		CustomerID: userID,
		Amount:     decimal.RequireFromString("119.00"),
	}

	fx.orderRepo.EXPECT().FindByIDForCustomer(ctx, orderID, userID).Return(expectedOrder, nil)

	order, err := fx.service.GetOrder(ctx, userID, orderID)

	require.NoError(t, err)
	assert.Equal(t, expectedOrder, order)
}

func TestCheckoutService_GetOrder_OtherCustomersOrder(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByIDForCustomer(ctx, orderID, userID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, userID, orderID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCheckoutService_ListOrders_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedOrders := []*entity.Order{
		{ID: uuid.New(), CustomerID: userID},
		{ID: uuid.New(), CustomerID: userID},
	}

	fx.orderRepo.EXPECT().ListByCustomer(ctx, userID).Return(expectedOrders, nil)

	orders, err := fx.service.ListOrders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedOrders, orders)
}
