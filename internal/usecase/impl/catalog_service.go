package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"brew/config"
	"brew/internal/domain/entity"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/domain/repository"
	"brew/internal/domain/service"
	"brew/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	repo           repository.CatalogRepository
	notifier       service.Notifier
	logger         *slog.Logger
	remotePayments bool

	mu         sync.RWMutex
	coffees    []entity.Coffee
	payments   []entity.PaymentMethod
	deliveries []entity.DeliveryMethod
	inFlight   int
	lastErr    error
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	repo repository.CatalogRepository,
	notifier service.Notifier,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	remotePayments := false
	if cfg != nil && cfg.Catalog != nil {
		remotePayments = cfg.Catalog.RemotePaymentMethods
	}

	return &catalogService{
		repo:           repo,
		notifier:       notifier,
		logger:         logger,
		remotePayments: remotePayments,
	}
}

// LoadCoffees replaces the coffee list with the one the service returns and clears the last
// recorded error.
func (srv *catalogService) LoadCoffees(ctx context.Context) {
	srv.setLastError(nil)
	srv.loadCoffees(ctx)
}

func (srv *catalogService) loadCoffees(ctx context.Context) {
	srv.mu.Lock()
	srv.inFlight++
	srv.mu.Unlock()

	coffees, err := srv.repo.ListCoffees(ctx)

	srv.mu.Lock()
	srv.inFlight--
	if err != nil {
		srv.coffees = nil
		srv.lastErr = err
	} else {
		srv.coffees = coffees
	}
	srv.mu.Unlock()

	if err != nil {
		srv.logger.Warn("Failed to load coffees", "error", err)
		srv.notifier.Notify(entity.NoticeWarning, "Coffees could not be loaded")

		return
	}

	srv.logger.Debug("Coffees loaded", "count", len(coffees))
}

// LoadPayments installs the built-in payment methods, or the remote ones when enabled.
func (srv *catalogService) LoadPayments(ctx context.Context) {
	methods := entity.StaticPaymentMethods()

	if srv.remotePayments {
		remote, err := srv.repo.ListPaymentMethods(ctx)
		switch {
		case err != nil:
			srv.logger.Warn("Failed to load payment methods, using built-in set", "error", err)
			srv.notifier.Notify(entity.NoticeWarning, "Payment methods could not be loaded")
			srv.setLastError(err)
		case len(remote) > 0:
			methods = remote
		}
	}

	srv.mu.Lock()
	srv.payments = methods
	srv.mu.Unlock()

	srv.logger.Debug("Payment methods loaded", "count", len(methods))
}

// LoadDeliveries replaces the delivery methods with the flattened remote delivery options.
func (srv *catalogService) LoadDeliveries(ctx context.Context) {
	methods, err := srv.repo.ListDeliveryMethods(ctx)
	if err != nil {
		methods = nil
		srv.logger.Warn("Failed to load delivery methods", "error", err)
		srv.notifier.Notify(entity.NoticeWarning, "Delivery methods could not be loaded")
		srv.setLastError(err)
	}

	srv.mu.Lock()
	srv.deliveries = methods
	srv.mu.Unlock()

	srv.logger.Debug("Delivery methods loaded", "count", len(methods))
}

// LoadAll loads the three lists concurrently. The last error is cleared once up front so a
// failure from any of the three survives the others.
func (srv *catalogService) LoadAll(ctx context.Context) {
	srv.setLastError(nil)

	var wg sync.WaitGroup
	for _, load := range []func(context.Context){srv.loadCoffees, srv.LoadPayments, srv.LoadDeliveries} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			load(ctx)
		}()
	}
	wg.Wait()
}

func (srv *catalogService) Snapshot() usecase.CatalogSnapshot {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return usecase.CatalogSnapshot{
		Coffees:         slices.Clone(srv.coffees),
		PaymentMethods:  slices.Clone(srv.payments),
		DeliveryMethods: slices.Clone(srv.deliveries),
		Loading:         srv.inFlight > 0,
	}
}

func (srv *catalogService) Loading() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.inFlight > 0
}

func (srv *catalogService) LastError() error {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.lastErr
}

func (srv *catalogService) Coffee(id string) (*entity.Coffee, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	for _, c := range srv.coffees {
		if c.ID == id {
			return &c, nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("coffee " + id)
}

func (srv *catalogService) PaymentMethod(id string) (*entity.PaymentMethod, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	for _, m := range srv.payments {
		if m.ID == id {
			return &m, nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("payment method " + id)
}

func (srv *catalogService) DeliveryMethod(id string) (*entity.DeliveryMethod, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	for _, m := range srv.deliveries {
		if m.ID == id {
			return &m, nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("delivery method " + id)
}

func (srv *catalogService) setLastError(err error) {
	srv.mu.Lock()
	srv.lastErr = err
	srv.mu.Unlock()
}
