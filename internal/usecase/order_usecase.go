package usecase

import (
	"context"

	"brew/internal/domain/entity"
)

// OrderUsecase owns the single active order and drives it through the pipeline.
type OrderUsecase interface {
	// Submit builds an order from the current selection, places it remotely and makes it active.
	Submit(ctx context.Context) (*entity.Order, error)

	// AdvanceStatus moves the active order to target, which must be the next stage.
	// A failed remote update is applied locally and reported with ServerConfirmed false.
	AdvanceStatus(ctx context.Context, target entity.OrderStatus) (*entity.StatusTransition, error)

	// ConfirmPayment validates details against the paying order and moves it on to delivering.
	ConfirmPayment(ctx context.Context, details PaymentDetails) (*entity.StatusTransition, error)

	// Cancel forgets the active order locally; the service is not told.
	Cancel()

	// Reset cancels and clears the selection.
	Reset()

	// Resume makes an order fetched from the service the active one.
	Resume(ctx context.Context, order entity.Order)

	ActiveOrder() *entity.Order
	Processing() bool
	Snapshot() OrderState
}

// PaymentDetails is what the user typed to pay. Only the fields of the chosen method are read.
type PaymentDetails struct {
	CardNumber  string `json:"cardNumber,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	SecretCode  string `json:"secretCode,omitempty"`
	CashAmount  string `json:"cashAmount,omitempty"`
}

// OrderState is a copy of the engine state for display.
type OrderState struct {
	Order      *entity.Order `json:"order"`
	Processing bool          `json:"processing"`
}
