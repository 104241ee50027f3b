package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutUsecase defines the order workflow: initiating a checkout for one
// product, recording the order, and reading the caller's order history.
type CheckoutUsecase interface {
	// InitiateCheckout resolves an in-stock product and returns it together
	// with prefill values from the caller's account and profile. The caller's
	// profile is created on first use.
	InitiateCheckout(ctx context.Context, userID uuid.UUID, productSlug string) (*InitiateCheckoutOutput, error)

	// SubmitCheckout validates the form fields and records one order,
	// snapshotting the amount from the product's current price. Resubmitting
	// creates a second, independent order.
	SubmitCheckout(ctx context.Context, userID uuid.UUID, productSlug string, input *SubmitCheckoutInput) (uuid.UUID, error)

	// GetOrder returns one order, visible only to its owner.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the caller's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}

// InitiateCheckoutOutput carries the checkout form's product and prefill values.
type InitiateCheckoutOutput struct {
	Product        *entity.Product
	InitialName    string // Display name, falling back to the username.
	InitialEmail   string // Account email, empty when unset.
	InitialAddress string // The profile's derived full address.
}

// SubmitCheckoutInput defines the data required to place an order.
type SubmitCheckoutInput struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}
