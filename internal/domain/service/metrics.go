package service

import (
	"context"

	"brew/internal/domain/entity"
)

// LifecycleMetrics records what happens to orders
type LifecycleMetrics interface {
	OrderSubmitted(ctx context.Context, succeeded bool)
	StatusTransitioned(ctx context.Context, to entity.OrderStatus, serverConfirmed bool)
	PaymentRejected(ctx context.Context, paymentType entity.PaymentType)
	StaleResponseDropped(ctx context.Context, operation string)
}
