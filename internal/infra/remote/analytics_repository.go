package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"brew/internal/domain/entity"
	"brew/internal/domain/repository"
)

const (
	ordersSummaryPath = "/api/analytics/orders-summary"
	userStatsPath     = "/api/analytics/user-stats/"
)

type analyticsRepository struct {
	client *Client
}

// NewAnalyticsRepository creates an AnalyticsRepository backed by the coffee service.
func NewAnalyticsRepository(client *Client) repository.AnalyticsRepository {
	return &analyticsRepository{client: client}
}

func (repo *analyticsRepository) OrdersSummary(ctx context.Context) (*entity.OrdersSummary, error) {
	var dto ordersSummaryDTO
	if err := repo.client.do(ctx, http.MethodGet, ordersSummaryPath, nil, nil, &dto); err != nil {
		return nil, err
	}

	return &entity.OrdersSummary{
		TotalOrders:       dto.TotalOrders,
		TotalRevenue:      int64(dto.TotalRevenue),
		AverageOrderValue: dto.AverageOrderValue,
	}, nil
}

func (repo *analyticsRepository) UserStats(ctx context.Context, userID string) (*entity.UserStats, error) {
	var dto userStatsDTO
	if err := repo.client.do(ctx, http.MethodGet, userStatsPath+url.PathEscape(userID), nil, nil, &dto); err != nil {
		return nil, err
	}

	stats := &entity.UserStats{
		UserID:         dto.UserID,
		TotalOrders:    dto.TotalOrders,
		TotalSpent:     int64(dto.TotalSpent),
		FavoriteCoffee: dto.FavoriteCoffee,
		LastOrderDate:  ParseTimestamp(dto.LastOrderDate, time.Time{}),
	}
	if stats.UserID == "" {
		stats.UserID = userID
	}

	return stats, nil
}
