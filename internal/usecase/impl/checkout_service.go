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
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitiateCheckout resolves the in-stock product, makes sure the caller has a
// profile, and returns the form prefill values.
func (srv *checkoutService) InitiateCheckout(ctx context.Context, userID uuid.UUID, productSlug string) (*usecase.InitiateCheckoutOutput, error) {
	srv.log(ctx).Debug("Initiating checkout", slog.Any("user_id", userID), slog.String("slug", productSlug))

	var output *usecase.InitiateCheckoutOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		// 1. An unknown or out-of-stock slug is a plain not-found.
		product, err := productRepo.FindInStockBySlug(ctx, productSlug)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Create the profile on first use. Idempotent: an existing profile
		// is left untouched.
		profile, err := srv.ensureProfile(ctx, profileRepo, userID)
		if err != nil {
			return err
		}

		output = &usecase.InitiateCheckoutOutput{
			Product:        product,
			InitialName:    user.DisplayName(),
			InitialEmail:   user.Email,
			InitialAddress: profile.FullAddress(),
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to initiate checkout")
	}

	return output, nil
}

// SubmitCheckout validates the form and records exactly one order. The product
// read and the order write share a transaction so the amount snapshot cannot
// interleave with a concurrent price edit.
func (srv *checkoutService) SubmitCheckout(ctx context.Context, userID uuid.UUID, productSlug string, input *usecase.SubmitCheckoutInput) (uuid.UUID, error) {
	srv.log(ctx).Info("Submitting checkout", slog.Any("user_id", userID), slog.String("slug", productSlug))

	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	address := strings.TrimSpace(input.Address)
	paymentMethod := entity.PaymentMethod(strings.TrimSpace(input.PaymentMethod))

	// All-or-nothing: any missing field leaves the store untouched.
	if fullName == "" || email == "" || address == "" || paymentMethod == "" {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, "all payment details are required")
	}
	if !paymentMethod.Valid() {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown payment method")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		product, err := productRepo.FindInStockBySlug(ctx, productSlug)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		// Amount is snapshotted here; later price edits must not touch it.
		order = &entity.Order{
			CustomerID:    userID,
			ProductID:     product.ID,
			FullName:      fullName,
			Email:         email,
			Address:       address,
			PaymentMethod: paymentMethod,
			Amount:        product.Price,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Checkout failed", slog.Any("error", err), slog.Any("user_id", userID))

		return uuid.Nil, errors.Wrap(err, "failed to submit checkout")
	}

	srv.publishOrderPlaced(ctx, order, productSlug)

	return order.ID, nil
}

// publishOrderPlaced emits the order event best-effort; a publish failure never
// fails the checkout that already committed.
func (srv *checkoutService) publishOrderPlaced(ctx context.Context, order *entity.Order, productSlug string) {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:       order.ID.String(),
		CustomerID:    order.CustomerID.String(),
		ProductSlug:   productSlug,
		Amount:        order.Amount.StringFixed(2),
		PaymentMethod: order.PaymentMethod.String(),
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.Any("error", err),
			slog.String("order_id", event.OrderID),
		)
	}
}

// GetOrder returns the order only to its owner. A missing order and someone
// else's order are the same not-found.
func (srv *checkoutService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Debug("Getting order", slog.Any("user_id", userID), slog.Any("order_id", orderID))

	order, err := srv.orderRepo.FindByIDForCustomer(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListOrders returns the caller's order history, newest first.
func (srv *checkoutService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	srv.log(ctx).Debug("Listing orders", slog.Any("user_id", userID))

	orders, err := srv.orderRepo.ListByCustomer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ensureProfile fetches the user's profile, creating an empty one when absent.
func (srv *checkoutService) ensureProfile(ctx context.Context, profileRepo repository.ProfileRepository, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := profileRepo.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = entity.NewProfile(userID)
	if err := profileRepo.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}
