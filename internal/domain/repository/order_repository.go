package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound covers both a genuinely missing order and an order owned by
// a different customer; the two cases are deliberately indistinguishable.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for recorded orders. Orders are
// write-once: there is no update or delete.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByIDForCustomer retrieves an order by id scoped to its owner,
	// preloading the purchased product. Any other customer's id yields
	// ErrOrderNotFound.
	FindByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Order, error)

	// ListByCustomer retrieves all orders of one customer, newest first,
	// preloading the purchased products.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
}
