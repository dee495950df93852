package impl

import (
	"log/slog"
	"sync"

	"brew/internal/domain/entity"
	"brew/internal/errors"
	"brew/internal/usecase"
)

// selectionService implements the SelectionUsecase interface.
type selectionService struct {
	catalog usecase.CatalogUsecase
	logger  *slog.Logger

	mu       sync.RWMutex
	coffee   *entity.Coffee
	payment  *entity.PaymentMethod
	delivery *entity.DeliveryMethod
}

// NewSelectionService is the constructor for selectionService.
func NewSelectionService(catalog usecase.CatalogUsecase, logger *slog.Logger) usecase.SelectionUsecase {
	return &selectionService{
		catalog: catalog,
		logger:  logger,
	}
}

// SelectCoffee sets the chosen coffee. A coffee missing from the catalog is accepted and logged.
func (srv *selectionService) SelectCoffee(coffee entity.Coffee) {
	if _, err := srv.catalog.Coffee(coffee.ID); err != nil {
		srv.logger.Debug("Selected coffee is not in the catalog", "coffeeID", coffee.ID)
	}

	srv.mu.Lock()
	srv.coffee = &coffee
	srv.mu.Unlock()
}

func (srv *selectionService) SelectPayment(method entity.PaymentMethod) {
	if _, err := srv.catalog.PaymentMethod(method.ID); err != nil {
		srv.logger.Debug("Selected payment method is not in the catalog", "paymentID", method.ID)
	}

	srv.mu.Lock()
	srv.payment = &method
	srv.mu.Unlock()
}

func (srv *selectionService) SelectDelivery(method entity.DeliveryMethod) {
	if _, err := srv.catalog.DeliveryMethod(method.ID); err != nil {
		srv.logger.Debug("Selected delivery method is not in the catalog", "deliveryID", method.ID)
	}

	srv.mu.Lock()
	srv.delivery = &method
	srv.mu.Unlock()
}

func (srv *selectionService) SelectCoffeeByID(id string) error {
	coffee, err := srv.catalog.Coffee(id)
	if err != nil {
		return errors.Wrap(err, "failed to select coffee")
	}

	srv.mu.Lock()
	srv.coffee = coffee
	srv.mu.Unlock()

	return nil
}

func (srv *selectionService) SelectPaymentByID(id string) error {
	method, err := srv.catalog.PaymentMethod(id)
	if err != nil {
		return errors.Wrap(err, "failed to select payment method")
	}

	srv.mu.Lock()
	srv.payment = method
	srv.mu.Unlock()

	return nil
}

func (srv *selectionService) SelectDeliveryByID(id string) error {
	method, err := srv.catalog.DeliveryMethod(id)
	if err != nil {
		return errors.Wrap(err, "failed to select delivery method")
	}

	srv.mu.Lock()
	srv.delivery = method
	srv.mu.Unlock()

	return nil
}

// Current returns a copy of the selection.
func (srv *selectionService) Current() usecase.Selection {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	var sel usecase.Selection
	if srv.coffee != nil {
		coffee := *srv.coffee
		sel.Coffee = &coffee
	}
	if srv.payment != nil {
		payment := *srv.payment
		sel.Payment = &payment
	}
	if srv.delivery != nil {
		delivery := *srv.delivery
		sel.Delivery = &delivery
	}

	return sel
}

func (srv *selectionService) Clear() {
	srv.mu.Lock()
	srv.coffee = nil
	srv.payment = nil
	srv.delivery = nil
	srv.mu.Unlock()
}
