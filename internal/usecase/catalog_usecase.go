// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"brew/internal/domain/entity"
)

// CatalogUsecase caches what the user can choose from. Loads never fail: a failed load empties
// the affected list and raises a notice.
type CatalogUsecase interface {
	LoadCoffees(ctx context.Context)
	LoadPayments(ctx context.Context)
	LoadDeliveries(ctx context.Context)

	// LoadAll runs the three loads concurrently and returns when all are done.
	LoadAll(ctx context.Context)

	Snapshot() CatalogSnapshot
	Loading() bool

	// LastError is the error of the most recent failed load, nil once a coffee load starts.
	LastError() error

	Coffee(id string) (*entity.Coffee, error)
	PaymentMethod(id string) (*entity.PaymentMethod, error)
	DeliveryMethod(id string) (*entity.DeliveryMethod, error)
}

// CatalogSnapshot is a copy of the cached catalog.
type CatalogSnapshot struct {
	Coffees         []entity.Coffee         `json:"coffees"`
	PaymentMethods  []entity.PaymentMethod  `json:"paymentMethods"`
	DeliveryMethods []entity.DeliveryMethod `json:"deliveryMethods"`
	Loading         bool                    `json:"loading"`
}
