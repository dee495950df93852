package remote

import (
	"context"
	"net/http"

	"brew/internal/domain/entity"
	"brew/internal/domain/repository"
)

const paymentsPath = "/api/payments"

type paymentRepository struct {
	client *Client
}

// NewPaymentRepository creates a PaymentRepository backed by the coffee service.
func NewPaymentRepository(client *Client) repository.PaymentRepository {
	return &paymentRepository{client: client}
}

func (repo *paymentRepository) ListPayments(ctx context.Context) ([]entity.PaymentRecord, error) {
	var dtos []paymentRecordDTO
	if err := repo.client.do(ctx, http.MethodGet, paymentsPath, nil, nil, &dtos); err != nil {
		return nil, err
	}

	now := repo.client.now()
	records := make([]entity.PaymentRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toPaymentRecord(dto, now))
	}

	return records, nil
}
