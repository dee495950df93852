package remote

import (
	"context"
	"net/http"
	"net/url"

	"brew/internal/domain/entity"
	"brew/internal/domain/repository"
)

const ordersPath = "/api/orders"

type orderRepository struct {
	client *Client
}

// NewOrderRepository creates an OrderRepository backed by the coffee service.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (repo *orderRepository) Create(ctx context.Context, req *entity.CreateOrderRequest) (*entity.Order, error) {
	var dto orderDTO
	if err := repo.client.do(ctx, http.MethodPost, ordersPath, nil, req, &dto); err != nil {
		return nil, err
	}

	order := toOrder(dto, repo.client.now())

	return &order, nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var dto orderDTO
	if err := repo.client.do(ctx, http.MethodGet, ordersPath+"/"+url.PathEscape(id), nil, nil, &dto); err != nil {
		return nil, err
	}

	order := toOrder(dto, repo.client.now())

	return &order, nil
}

func (repo *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	return repo.list(ctx, ordersPath)
}

func (repo *orderRepository) ListActive(ctx context.Context) ([]entity.Order, error) {
	return repo.list(ctx, ordersPath+"/active")
}

func (repo *orderRepository) list(ctx context.Context, path string) ([]entity.Order, error) {
	var dtos []orderDTO
	if err := repo.client.do(ctx, http.MethodGet, path, nil, nil, &dtos); err != nil {
		return nil, err
	}

	now := repo.client.now()
	orders := make([]entity.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toOrder(dto, now))
	}

	return orders, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.StatusUpdate, error) {
	query := url.Values{"status": []string{status.String()}}

	var dto statusUpdateDTO
	if err := repo.client.do(ctx, http.MethodPatch, ordersPath+"/"+url.PathEscape(id)+"/status", query, nil, &dto); err != nil {
		return nil, err
	}

	update := toStatusUpdate(dto, id, repo.client.now())

	return &update, nil
}
