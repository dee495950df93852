package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"brew/internal/domain/entity"
	"brew/internal/domain/repository"
	"brew/internal/domain/service"
	"brew/internal/usecase"

	"go.uber.org/fx"
)

// recentOrdersOnBoard is how many history entries the status board shows.
const recentOrdersOnBoard = 3

// HistoryServiceParams holds dependencies for historyService, injected by Fx
type HistoryServiceParams struct {
	fx.In

	Orders    repository.OrderRepository
	Payments  repository.PaymentRepository
	Analytics repository.AnalyticsRepository
	Engine    usecase.OrderUsecase
	Notifier  service.Notifier
	Logger    *slog.Logger
}

// historyService implements the HistoryUsecase interface.
type historyService struct {
	orders    repository.OrderRepository
	payments  repository.PaymentRepository
	analytics repository.AnalyticsRepository
	engine    usecase.OrderUsecase
	notifier  service.Notifier
	logger    *slog.Logger

	mu             sync.RWMutex
	orderHistory   []entity.Order
	paymentHistory []entity.PaymentRecord
}

// NewHistoryService is the constructor for historyService.
func NewHistoryService(params HistoryServiceParams) usecase.HistoryUsecase {
	return &historyService{
		orders:    params.Orders,
		payments:  params.Payments,
		analytics: params.Analytics,
		engine:    params.Engine,
		notifier:  params.Notifier,
		logger:    params.Logger,
	}
}

// LoadOrderHistory replaces the order history. A failure leaves it empty.
func (srv *historyService) LoadOrderHistory(ctx context.Context) []entity.Order {
	srv.logger.Debug("Loading order history")

	orders, err := srv.orders.List(ctx)
	if err != nil {
		srv.logger.Warn("Failed to load order history", "error", err)
		srv.notifier.Notify(entity.NoticeWarning, "Order history could not be loaded")
		orders = nil
	}
	for i := range orders {
		orders[i].Status = entity.NormalizeOrderStatus(string(orders[i].Status))
	}

	srv.mu.Lock()
	srv.orderHistory = orders
	srv.mu.Unlock()

	return slices.Clone(orders)
}

// LoadPaymentHistory replaces the payment history. A failure leaves it empty.
func (srv *historyService) LoadPaymentHistory(ctx context.Context) []entity.PaymentRecord {
	srv.logger.Debug("Loading payment history")

	records, err := srv.payments.ListPayments(ctx)
	if err != nil {
		srv.logger.Warn("Failed to load payment history", "error", err)
		srv.notifier.Notify(entity.NoticeWarning, "Payment history could not be loaded")
		records = nil
	}

	srv.mu.Lock()
	srv.paymentHistory = records
	srv.mu.Unlock()

	return slices.Clone(records)
}

// LoadActiveOrder hands the first order the service reports as active to the engine, completed
// ones included. A failure is reported as a notice and leaves the engine untouched.
func (srv *historyService) LoadActiveOrder(ctx context.Context) (*entity.Order, error) {
	orders, err := srv.orders.ListActive(ctx)
	if err != nil {
		srv.logger.Warn("Failed to load active order", "error", err)
		srv.notifier.Notify(entity.NoticeWarning, "The active order could not be loaded")

		return nil, nil
	}
	if len(orders) == 0 {
		srv.logger.Debug("No active order to resume")

		return nil, nil
	}

	order := orders[0]
	srv.logger.Info("Resuming active order", "orderID", order.ID, "status", order.Status)
	srv.engine.Resume(ctx, order)

	return srv.engine.ActiveOrder(), nil
}

func (srv *historyService) OrderHistory() []entity.Order {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.orderHistory)
}

func (srv *historyService) PaymentHistory() []entity.PaymentRecord {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.paymentHistory)
}

// Board computes the status board. The average ignores server totals and uses coffee cost plus
// delivery price, the way the board always displayed it.
func (srv *historyService) Board() entity.OrderBoard {
	srv.mu.RLock()
	history := slices.Clone(srv.orderHistory)
	srv.mu.RUnlock()

	board := entity.OrderBoard{
		TotalOrders: len(history),
		Active:      srv.engine.ActiveOrder(),
		Recent:      history[:min(len(history), recentOrdersOnBoard)],
	}
	if board.Active != nil {
		board.ActiveOrders = 1
	}

	if len(history) > 0 {
		var sum int64
		for i := range history {
			sum += history[i].ComputedTotal()
		}
		board.AverageOrderValue = float64(sum) / float64(len(history))
	}

	return board
}

// OrdersSummary fetches the aggregate figures, nil when they are unavailable.
func (srv *historyService) OrdersSummary(ctx context.Context) *entity.OrdersSummary {
	summary, err := srv.analytics.OrdersSummary(ctx)
	if err != nil {
		srv.logger.Warn("Failed to load orders summary", "error", err)
		srv.notifier.Notify(entity.NoticeWarning, "Order statistics are unavailable")

		return nil
	}

	return summary
}

// UserStats fetches the per-user figures, nil when they are unavailable.
func (srv *historyService) UserStats(ctx context.Context, userID string) *entity.UserStats {
	stats, err := srv.analytics.UserStats(ctx, userID)
	if err != nil {
		srv.logger.Warn("Failed to load user stats", "userID", userID, "error", err)
		srv.notifier.Notify(entity.NoticeWarning, "User statistics are unavailable")

		return nil
	}

	return stats
}
