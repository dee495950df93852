package repository

import (
	"context"

	"brew/internal/domain/entity"
)

// AnalyticsRepository provides aggregates computed by the service.
type AnalyticsRepository interface {
	OrdersSummary(ctx context.Context) (*entity.OrdersSummary, error)
	UserStats(ctx context.Context, userID string) (*entity.UserStats, error)
}
