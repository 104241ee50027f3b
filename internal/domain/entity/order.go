// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order records one completed checkout: exactly one product at one price for
// one customer. Orders are immutable after creation; there is no update or
// cancel path.
type Order struct {
	ID            uuid.UUID       // The unique identifier for the order.
	CustomerID    uuid.UUID       // The user who placed the order. Orders are visible only to their owner.
	ProductID     uuid.UUID       // The purchased product. Protected from deletion while this order exists.
	Product       *Product        // Preloaded purchased product, nil when not fetched.
	FullName      string          // Recipient name as entered at checkout.
	Email         string          // Contact email as entered at checkout.
	Address       string          // Shipping address as entered at checkout.
	PaymentMethod PaymentMethod   // Chosen payment method. Recorded, never processed.
	Amount        decimal.Decimal // The product price snapshotted at creation time. Later price edits must not change it.
	CreatedAt     time.Time       // Timestamp of creation; history lists newest first.
}
