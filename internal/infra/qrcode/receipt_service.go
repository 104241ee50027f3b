package qrcode

import (
	"encoding/json"
	"fmt"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type receiptService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData represents the payload encoded in an order receipt QR code
type ReceiptData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewReceiptService creates a new order receipt service instance
func NewReceiptService(size int, errorCorrectionLevel string) service.ReceiptService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &receiptService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// OrderReceiptQR generates a PNG QR code encoding the order reference
func (s *receiptService) OrderReceiptQR(orderID uuid.UUID) ([]byte, error) {
	data := ReceiptData{
		OrderID: orderID.String(),
		Type:    "order_receipt",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
