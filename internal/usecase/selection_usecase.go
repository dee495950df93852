package usecase

import (
	"brew/internal/domain/entity"
)

// SelectionUsecase holds the in-progress choice of coffee, payment method and delivery method.
type SelectionUsecase interface {
	SelectCoffee(coffee entity.Coffee)
	SelectPayment(method entity.PaymentMethod)
	SelectDelivery(method entity.DeliveryMethod)

	// The ByID variants resolve the id through the catalog and fail with ErrNotFound.
	SelectCoffeeByID(id string) error
	SelectPaymentByID(id string) error
	SelectDeliveryByID(id string) error

	Current() Selection
	Clear()
}

// Selection is a copy of the current choice. Unset parts are nil.
type Selection struct {
	Coffee   *entity.Coffee         `json:"coffee"`
	Payment  *entity.PaymentMethod  `json:"payment"`
	Delivery *entity.DeliveryMethod `json:"delivery"`
}

// Complete reports whether every part is chosen.
func (s Selection) Complete() bool {
	return s.Coffee != nil && s.Payment != nil && s.Delivery != nil
}
