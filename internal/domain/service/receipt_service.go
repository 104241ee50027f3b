package service

import (
	"github.com/google/uuid"
)

// ReceiptService renders scannable receipts for completed orders.
type ReceiptService interface {
	// OrderReceiptQR returns a PNG QR code encoding the order reference.
	OrderReceiptQR(orderID uuid.UUID) ([]byte, error)
}
