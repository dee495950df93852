package repository

import (
	"context"

	"brew/internal/domain/entity"
)

// PaymentRepository provides the payment history.
type PaymentRepository interface {
	// ListPayments retrieves past payments with transaction reference, method and status filled in.
	ListPayments(ctx context.Context) ([]entity.PaymentRecord, error)
}
