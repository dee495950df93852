package repository

import (
	"context"

	"brew/internal/domain/entity"
)

// OrderRepository defines the remote operations on coffee orders.
// Returned orders are normalized: status is always a pipeline stage and timestamps are parsed.
type OrderRepository interface {
	// Create places a new order and returns it as the service recorded it.
	Create(ctx context.Context, req *entity.CreateOrderRequest) (*entity.Order, error)

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// List retrieves every order of the user, most recent first when the service sorts them.
	List(ctx context.Context) ([]entity.Order, error)

	// ListActive retrieves the orders that have not completed yet.
	ListActive(ctx context.Context) ([]entity.Order, error)

	// UpdateStatus asks the service to move an order to status and returns its acknowledgement.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.StatusUpdate, error)
}
