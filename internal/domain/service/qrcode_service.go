package service

import (
	"brew/internal/domain/entity"
)

// ReceiptData is the payload encoded in a receipt QR code
type ReceiptData struct {
	OrderID     string             `json:"order_id"`
	OrderNumber string             `json:"order_number,omitempty"`
	Total       int64              `json:"total"`
	Status      entity.OrderStatus `json:"status"`
	Type        string             `json:"type"`
}

// QRCodeService defines the interface for receipt QR code generation and parsing
type QRCodeService interface {
	// GenerateReceiptQR generates a PNG QR code for an order receipt
	GenerateReceiptQR(order *entity.Order) ([]byte, error)

	// RenderReceiptTerminal renders the receipt QR code as text for a terminal
	RenderReceiptTerminal(order *entity.Order) (string, error)

	// ParseReceiptQR parses QR code data back into the receipt payload
	ParseReceiptQR(qrData string) (*ReceiptData, error)
}
