package qrcode

import (
	"encoding/json"

	"brew/config"
	"brew/internal/domain/entity"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/domain/service"
	"brew/internal/errors"

	"github.com/skip2/go-qrcode"
)

const receiptType = "receipt"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig creates the QR code service from configuration
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateReceiptQR generates a PNG QR code for a paid order
func (s *qrcodeService) GenerateReceiptQR(order *entity.Order) ([]byte, error) {
	qrCode, err := s.encode(order)
	if err != nil {
		return nil, err
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// RenderReceiptTerminal renders the receipt QR code with half-block characters
func (s *qrcodeService) RenderReceiptTerminal(order *entity.Order) (string, error) {
	qrCode, err := s.encode(order)
	if err != nil {
		return "", err
	}

	return qrCode.ToSmallString(false), nil
}

// ParseReceiptQR parses QR code data back into the receipt payload
func (s *qrcodeService) ParseReceiptQR(qrData string) (*service.ReceiptData, error) {
	var data service.ReceiptData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != receiptType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderID == "" {
		return nil, errors.New("QR code carries no order ID")
	}

	return &data, nil
}

func (s *qrcodeService) encode(order *entity.Order) (*qrcode.QRCode, error) {
	if order == nil {
		return nil, domainerrors.ErrNoActiveOrder
	}
	// Payment confirmation is what moves an order past paying.
	if order.Status.Rank() <= entity.OrderStatusPaying.Rank() {
		return nil, domainerrors.ErrReceiptUnavailable
	}

	data := service.ReceiptData{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Total:       order.Total(),
		Status:      order.Status,
		Type:        receiptType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	return qrCode, nil
}
