package impl

import (
	"math"
	"strconv"
	"strings"

	"brew/internal/domain/entity"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type cardPayment struct {
	CardNumber string `validate:"required,len=16,number"`
}

type mobilePayment struct {
	PhoneNumber string `validate:"required"`
	SecretCode  string `validate:"required"`
}

// paymentValidator checks payment input against the rule of the order's payment method.
type paymentValidator struct {
	validate *validator.Validate
}

func newPaymentValidator() *paymentValidator {
	return &paymentValidator{validate: validator.New()}
}

// Validate returns a PaymentValidationError when details do not satisfy the payment method of order.
func (v *paymentValidator) Validate(order *entity.Order, details usecase.PaymentDetails) error {
	if order.Payment == nil {
		return domainerrors.NewPaymentValidationError("no payment method on the order")
	}

	switch order.Payment.Type {
	case entity.PaymentTypeCard:
		if err := v.validate.Struct(cardPayment{CardNumber: details.CardNumber}); err != nil {
			return domainerrors.NewPaymentValidationError("card number must be exactly 16 digits")
		}

	case entity.PaymentTypeMobile:
		input := mobilePayment{
			PhoneNumber: strings.TrimSpace(details.PhoneNumber),
			SecretCode:  strings.TrimSpace(details.SecretCode),
		}
		if err := v.validate.Struct(input); err != nil {
			return domainerrors.NewPaymentValidationError("phone number and secret code are required")
		}

	case entity.PaymentTypeCash:
		return validateCash(order, details.CashAmount)

	default:
		return domainerrors.NewPaymentValidationError("unsupported payment method %q", order.Payment.Type)
	}

	return nil
}

func validateCash(order *entity.Order, raw string) error {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return domainerrors.NewPaymentValidationError("cash amount must be a number")
	}

	due := order.ComputedTotal()
	if value < float64(due) {
		return domainerrors.NewPaymentValidationError("cash amount must cover the total of %d", due)
	}

	return nil
}
