package impl

import (
	"time"

	"brew/internal/domain/entity"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/usecase"

	"github.com/google/uuid"
)

// OrderBuilder assembles an order from its three chosen parts. It has no side effects.
type OrderBuilder struct {
	coffee   *entity.Coffee
	payment  *entity.PaymentMethod
	delivery *entity.DeliveryMethod
	newID    func() string
}

// NewOrderBuilder returns an empty builder.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{newID: uuid.NewString}
}

func (b *OrderBuilder) WithCoffee(coffee entity.Coffee) *OrderBuilder {
	b.coffee = &coffee

	return b
}

func (b *OrderBuilder) WithPayment(method entity.PaymentMethod) *OrderBuilder {
	b.payment = &method

	return b
}

func (b *OrderBuilder) WithDelivery(method entity.DeliveryMethod) *OrderBuilder {
	b.delivery = &method

	return b
}

// Build returns a pending order stamped with now and a fresh client-side id, or a
// MissingSelectionError naming every part that was not provided.
func (b *OrderBuilder) Build(now time.Time) (*entity.Order, error) {
	var missing []string
	if b.coffee == nil {
		missing = append(missing, "coffee")
	}
	if b.payment == nil {
		missing = append(missing, "payment")
	}
	if b.delivery == nil {
		missing = append(missing, "delivery")
	}
	if len(missing) > 0 {
		return nil, domainerrors.NewMissingSelectionError(missing...)
	}

	payment := *b.payment
	delivery := *b.delivery

	return &entity.Order{
		ID:        b.newID(),
		Coffee:    *b.coffee,
		Payment:   &payment,
		Delivery:  &delivery,
		Status:    entity.OrderStatusPending,
		CreatedAt: now,
	}, nil
}

// BuildFromSelection builds an order from whatever the selection holds.
func BuildFromSelection(sel usecase.Selection, now time.Time) (*entity.Order, error) {
	b := NewOrderBuilder()
	if sel.Coffee != nil {
		b.WithCoffee(*sel.Coffee)
	}
	if sel.Payment != nil {
		b.WithPayment(*sel.Payment)
	}
	if sel.Delivery != nil {
		b.WithDelivery(*sel.Delivery)
	}

	return b.Build(now)
}

// CreateOrderRequest derives the creation payload. The total is always recomputed from the
// coffee cost and the delivery price.
func CreateOrderRequest(order *entity.Order) *entity.CreateOrderRequest {
	req := &entity.CreateOrderRequest{
		CoffeeID:   order.Coffee.ID,
		Status:     string(entity.OrderStatusPending),
		TotalPrice: order.ComputedTotal(),
	}
	if order.Payment != nil {
		req.PaymentID = order.Payment.ID
	}
	if order.Delivery != nil {
		req.DeliveryID = order.Delivery.ID
	}

	return req
}
