package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceiptService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewReceiptService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestReceiptService_OrderReceiptQR(t *testing.T) {
	service := NewReceiptService(256, "M")
	orderID := uuid.New()

	qrBytes, err := service.OrderReceiptQR(orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestReceiptService_OrderReceiptQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewReceiptService(tt.size, "M")

			qrBytes, err := service.OrderReceiptQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestReceiptData_Payload(t *testing.T) {
	orderID := uuid.New()
	data := ReceiptData{
		OrderID: orderID.String(),
		Type:    "order_receipt",
	}

	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	var decoded ReceiptData
	require.NoError(t, json.Unmarshal(jsonData, &decoded))
	assert.Equal(t, orderID.String(), decoded.OrderID)
	assert.Equal(t, "order_receipt", decoded.Type)
}
