// Package repository defines the interfaces for the data sources of the client.
// Every implementation sits behind the remote coffee service; the client owns no durable storage.
package repository

import (
	"context"

	"brew/internal/domain/entity"
)

// CatalogRepository provides the selectable catalog: coffees, payment methods and delivery methods.
type CatalogRepository interface {
	// ListCoffees retrieves the coffee catalog in the order the service returns it.
	ListCoffees(ctx context.Context) ([]entity.Coffee, error)

	// ListPaymentMethods retrieves the payment methods the service offers.
	ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)

	// ListDeliveryMethods retrieves delivery options and flattens them, one method per vehicle.
	ListDeliveryMethods(ctx context.Context) ([]entity.DeliveryMethod, error)
}
