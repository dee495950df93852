package remote

import (
	"context"
	"net/http"

	"brew/internal/domain/entity"
	"brew/internal/domain/repository"
)

const (
	coffeePath         = "/api/coffee"
	paymentMethodsPath = "/api/payment-methods"
	deliveryPath       = "/api/delivery"
)

type catalogRepository struct {
	client *Client
}

// NewCatalogRepository creates a CatalogRepository backed by the coffee service.
func NewCatalogRepository(client *Client) repository.CatalogRepository {
	return &catalogRepository{client: client}
}

func (repo *catalogRepository) ListCoffees(ctx context.Context) ([]entity.Coffee, error) {
	var dtos []coffeeDTO
	if err := repo.client.do(ctx, http.MethodGet, coffeePath, nil, nil, &dtos); err != nil {
		return nil, err
	}

	coffees := make([]entity.Coffee, 0, len(dtos))
	for _, dto := range dtos {
		coffees = append(coffees, toCoffee(dto))
	}

	return coffees, nil
}

func (repo *catalogRepository) ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	var dtos []paymentMethodDTO
	if err := repo.client.do(ctx, http.MethodGet, paymentMethodsPath, nil, nil, &dtos); err != nil {
		return nil, err
	}

	methods := make([]entity.PaymentMethod, 0, len(dtos))
	for _, dto := range dtos {
		methods = append(methods, toPaymentMethod(dto))
	}

	return methods, nil
}

func (repo *catalogRepository) ListDeliveryMethods(ctx context.Context) ([]entity.DeliveryMethod, error) {
	var dtos []deliveryOptionDTO
	if err := repo.client.do(ctx, http.MethodGet, deliveryPath, nil, nil, &dtos); err != nil {
		return nil, err
	}

	methods := make([]entity.DeliveryMethod, 0, len(dtos))
	for _, dto := range dtos {
		methods = append(methods, FlattenDeliveryOption(toDeliveryOption(dto))...)
	}

	return methods, nil
}
