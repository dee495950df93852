package usecase

import (
	"context"

	"brew/internal/domain/entity"
)

// HistoryUsecase reads past orders and payments. History loads replace the cache wholesale and
// reset it to empty on failure.
type HistoryUsecase interface {
	LoadOrderHistory(ctx context.Context) []entity.Order
	LoadPaymentHistory(ctx context.Context) []entity.PaymentRecord

	// LoadActiveOrder resumes the first order the service lists as active, if any. Read failures
	// become a notice and a nil order.
	LoadActiveOrder(ctx context.Context) (*entity.Order, error)

	OrderHistory() []entity.Order
	PaymentHistory() []entity.PaymentRecord

	// Board summarizes cached history together with the active order.
	Board() entity.OrderBoard

	OrdersSummary(ctx context.Context) *entity.OrdersSummary
	UserStats(ctx context.Context, userID string) *entity.UserStats
}
