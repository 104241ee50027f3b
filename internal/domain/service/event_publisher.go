package service

import (
	"context"
)

// OrderEvent is emitted after an order is recorded, for downstream consumers
// such as fulfilment or notification workers.
type OrderEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string `json:"order_id"`
	CustomerID    string `json:"customer_id"`
	ProductSlug   string `json:"product_slug"`
	Amount        string `json:"amount"` // Decimal string, two places
	PaymentMethod string `json:"payment_method"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event for async processing.
	PublishOrderPlaced(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
