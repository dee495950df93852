package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"brew/config"
	deliverycontext "brew/internal/delivery/context"
	"brew/internal/domain/entity"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/domain/repository"
	"brew/internal/domain/service"
	"brew/internal/errors"
	"brew/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultStepDelay   = 5 * time.Second
	defaultResumeDelay = 2 * time.Second
	publishTimeout     = 5 * time.Second
)

// OrderServiceParams holds dependencies for the order lifecycle engine, injected by Fx
type OrderServiceParams struct {
	fx.In

	Orders    repository.OrderRepository
	Selection usecase.SelectionUsecase
	Scheduler service.Scheduler
	Notifier  service.Notifier
	Publisher service.EventPublisher
	Metrics   service.LifecycleMetrics
	Config    *config.Config
	Logger    *slog.Logger

	// Now is the clock; nil means time.Now.
	Now func() time.Time `optional:"true"`
}

// orderService implements the OrderUsecase interface. It owns the single active order.
//
// Every remote call happens outside mu. Its result is applied only if generation still holds
// the value read before the call: adopting a new order, Cancel and Resume all bump it, so
// answers and scheduled steps that belong to a replaced order are dropped.
type orderService struct {
	orders    repository.OrderRepository
	selection usecase.SelectionUsecase
	scheduler service.Scheduler
	notifier  service.Notifier
	publisher service.EventPublisher
	metrics   service.LifecycleMetrics
	validator *paymentValidator
	logger    *slog.Logger
	now       func() time.Time

	stepDelay   time.Duration
	resumeDelay time.Duration

	mu         sync.Mutex
	active     *entity.Order
	generation uint64
	processing bool
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		orders:      params.Orders,
		selection:   params.Selection,
		scheduler:   params.Scheduler,
		notifier:    params.Notifier,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		validator:   newPaymentValidator(),
		logger:      params.Logger,
		now:         params.Now,
		stepDelay:   defaultStepDelay,
		resumeDelay: defaultResumeDelay,
	}
	if srv.now == nil {
		srv.now = time.Now
	}
	if params.Config != nil && params.Config.Lifecycle != nil {
		if params.Config.Lifecycle.StepDelay > 0 {
			srv.stepDelay = params.Config.Lifecycle.StepDelay
		}
		if params.Config.Lifecycle.ResumeDelay > 0 {
			srv.resumeDelay = params.Config.Lifecycle.ResumeDelay
		}
	}

	return srv
}

func (srv *orderService) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Submit builds an order from the selection, places it and makes it the active order.
func (srv *orderService) Submit(ctx context.Context) (*entity.Order, error) {
	logger := srv.loggerFor(ctx)

	order, err := BuildFromSelection(srv.selection.Current(), srv.now())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.mu.Lock()
	if srv.processing || (srv.active != nil && !srv.active.Status.IsTerminal()) {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrOrderInProgress)
	}
	srv.processing = true
	gen := srv.generation
	srv.mu.Unlock()

	logger.Info("Submitting order", "coffeeID", order.Coffee.ID, "total", order.ComputedTotal())

	created, err := srv.orders.Create(ctx, CreateOrderRequest(order))

	srv.mu.Lock()
	if gen != srv.generation {
		srv.mu.Unlock()
		srv.dropStale(ctx, "submit", order.ID)

		return nil, errors.WithStack(domainerrors.ErrStaleResponse)
	}
	srv.processing = false

	if err != nil {
		srv.mu.Unlock()
		logger.Error("Failed to submit order", "error", err)
		srv.metrics.OrderSubmitted(ctx, false)
		srv.notifier.Notify(entity.NoticeError, "Your order could not be placed")

		return nil, domainerrors.NewOrderSubmissionError(err)
	}

	adoptCreated(order, created)
	srv.generation++
	gen = srv.generation
	srv.active = order
	result := order.Clone()
	srv.mu.Unlock()

	logger.Info("Order placed", "orderID", result.ID, "status", result.Status)
	srv.metrics.OrderSubmitted(ctx, true)
	srv.notifier.Notify(entity.NoticeSuccess, "Order placed")
	srv.publish(ctx, result.ID, "", result.Status, true)
	srv.arm(ctx, result.ID, result.Status, gen, srv.stepDelay)

	return result, nil
}

// adoptCreated takes the identity the service assigned. The chosen coffee, payment and delivery stay.
func adoptCreated(order, created *entity.Order) {
	if created == nil {
		return
	}
	if created.ID != "" {
		order.ID = created.ID
	}
	if !created.CreatedAt.IsZero() {
		order.CreatedAt = created.CreatedAt
	}
	order.Status = entity.NormalizeOrderStatus(string(created.Status))
	order.UserID = created.UserID
	order.OrderNumber = created.OrderNumber
	if created.TotalPrice != nil {
		total := *created.TotalPrice
		order.TotalPrice = &total
	}
}

// AdvanceStatus moves the active order to target, the stage right after the current one.
func (srv *orderService) AdvanceStatus(ctx context.Context, target entity.OrderStatus) (*entity.StatusTransition, error) {
	srv.mu.Lock()
	if srv.active == nil {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrNoActiveOrder)
	}
	id, from, gen := srv.active.ID, srv.active.Status, srv.generation
	srv.mu.Unlock()

	if from.AwaitsUser() {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition.WithDetails(
			string(from) + " -> " + string(target) + " requires payment confirmation"))
	}
	if next, ok := from.Next(); !ok || next != target {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition.WithDetails(string(from) + " -> " + string(target)))
	}

	transition, err := srv.advance(ctx, id, gen, from, target)
	if err != nil {
		return nil, err
	}

	srv.arm(ctx, id, transition.To, gen, srv.stepDelay)

	return transition, nil
}

// ConfirmPayment validates details and moves the paying order on to delivering.
func (srv *orderService) ConfirmPayment(ctx context.Context, details usecase.PaymentDetails) (*entity.StatusTransition, error) {
	srv.mu.Lock()
	if srv.active == nil {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrNoActiveOrder)
	}
	if srv.active.Status != entity.OrderStatusPaying {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrPaymentNotExpected)
	}
	order := srv.active.Clone()
	gen := srv.generation
	srv.mu.Unlock()

	if err := srv.validator.Validate(order, details); err != nil {
		var paymentType entity.PaymentType
		if order.Payment != nil {
			paymentType = order.Payment.Type
		}
		srv.loggerFor(ctx).Info("Payment rejected", "orderID", order.ID, "error", err)
		srv.metrics.PaymentRejected(ctx, paymentType)
		srv.notifier.Notify(entity.NoticeError, err.Error())

		return nil, err
	}

	transition, err := srv.advance(ctx, order.ID, gen, entity.OrderStatusPaying, entity.OrderStatusDelivering)
	if err != nil {
		return nil, err
	}

	srv.notifier.Notify(entity.NoticeSuccess, "Payment accepted")
	srv.arm(ctx, order.ID, transition.To, gen, srv.resumeDelay+srv.stepDelay)

	return transition, nil
}

// advance sends the status update and applies its outcome if the order is still the one it
// was issued for and still at from. A failed update is applied locally and reported unconfirmed.
func (srv *orderService) advance(
	ctx context.Context,
	id string,
	gen uint64,
	from, target entity.OrderStatus,
) (*entity.StatusTransition, error) {
	logger := srv.loggerFor(ctx)

	update, err := srv.orders.UpdateStatus(ctx, id, target)

	srv.mu.Lock()
	if gen != srv.generation || srv.active == nil || srv.active.ID != id || srv.active.Status != from {
		srv.mu.Unlock()
		srv.dropStale(ctx, "advance", id)

		return nil, errors.WithStack(domainerrors.ErrStaleResponse)
	}

	transition := &entity.StatusTransition{OrderID: id, From: from, To: target}
	switch {
	case err != nil:
		transition.Cause = err
	case update != nil && update.Status.Before(target):
		transition.Cause = errors.Errorf("service reported %s after update to %s", update.Status, target)
	default:
		if update != nil && !target.CrossesGate(update.Status) {
			transition.To = update.Status
		}
		transition.ServerConfirmed = true
	}
	srv.active.Status = transition.To
	srv.mu.Unlock()

	if update != nil && transition.To != update.Status && target.Before(update.Status) {
		logger.Warn("Service reported a status past the payment gate, holding at gate",
			"orderID", id,
			"target", target,
			"reported", update.Status,
		)
	}

	if transition.ServerConfirmed {
		logger.Info("Order status updated", "orderID", id, "from", from, "to", transition.To)
	} else {
		logger.Warn("Order status applied locally only",
			"orderID", id,
			"from", from,
			"to", transition.To,
			"error", transition.Cause,
		)
		srv.notifier.Notify(entity.NoticeWarning, "Status update not confirmed by the server")
	}

	srv.metrics.StatusTransitioned(ctx, transition.To, transition.ServerConfirmed)
	srv.publish(ctx, id, from, transition.To, transition.ServerConfirmed)
	if transition.To.IsTerminal() {
		srv.notifier.Notify(entity.NoticeSuccess, "Order completed")
	}

	return transition, nil
}

// arm schedules the next automatic step unless status is terminal or waits for the user.
func (srv *orderService) arm(ctx context.Context, id string, status entity.OrderStatus, gen uint64, delay time.Duration) {
	if status.IsTerminal() || status.AwaitsUser() {
		srv.scheduler.Cancel(id)

		return
	}

	taskCtx := deliverycontext.Detach(ctx)
	srv.scheduler.Schedule(id, delay, func() {
		srv.step(taskCtx, id, gen)
	})
}

// step is the scheduled automatic progression of the active order.
func (srv *orderService) step(ctx context.Context, id string, gen uint64) {
	srv.mu.Lock()
	if gen != srv.generation || srv.active == nil || srv.active.ID != id {
		srv.mu.Unlock()
		srv.dropStale(ctx, "step", id)

		return
	}
	from := srv.active.Status
	srv.mu.Unlock()

	if from.AwaitsUser() {
		return
	}
	next, ok := from.Next()
	if !ok {
		return
	}

	transition, err := srv.advance(ctx, id, gen, from, next)
	if err != nil {
		return
	}

	srv.arm(ctx, id, transition.To, gen, srv.stepDelay)
}

// Cancel forgets the active order and its pending step.
func (srv *orderService) Cancel() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.cancelLocked()
}

func (srv *orderService) cancelLocked() {
	if srv.active != nil {
		srv.scheduler.Cancel(srv.active.ID)
		srv.logger.Info("Order cancelled", "orderID", srv.active.ID)
	}
	srv.active = nil
	srv.processing = false
	srv.generation++
}

func (srv *orderService) Reset() {
	srv.Cancel()
	srv.selection.Clear()
}

// Resume makes order the active order and continues its automatic progression.
func (srv *orderService) Resume(ctx context.Context, order entity.Order) {
	order.Status = entity.NormalizeOrderStatus(string(order.Status))
	adopted := order.Clone()

	srv.mu.Lock()
	if srv.active != nil && srv.active.ID != adopted.ID {
		srv.scheduler.Cancel(srv.active.ID)
	}
	srv.generation++
	gen := srv.generation
	srv.active = adopted
	srv.processing = false
	srv.mu.Unlock()

	srv.loggerFor(ctx).Info("Order resumed", "orderID", adopted.ID, "status", adopted.Status)
	srv.publish(ctx, adopted.ID, "", adopted.Status, true)
	srv.arm(ctx, adopted.ID, adopted.Status, gen, srv.stepDelay)
}

func (srv *orderService) ActiveOrder() *entity.Order {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.active.Clone()
}

func (srv *orderService) Processing() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.processing
}

func (srv *orderService) Snapshot() usecase.OrderState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return usecase.OrderState{
		Order:      srv.active.Clone(),
		Processing: srv.processing,
	}
}

func (srv *orderService) dropStale(ctx context.Context, operation, id string) {
	srv.loggerFor(ctx).Debug("Dropping stale order result", "operation", operation, "orderID", id)
	srv.metrics.StaleResponseDropped(ctx, operation)
}

// publish emits a status change event. Failures are logged only.
func (srv *orderService) publish(ctx context.Context, id string, from, to entity.OrderStatus, confirmed bool) {
	event := &entity.OrderEvent{
		EventID:         uuid.NewString(),
		RequestID:       deliverycontext.RequestID(ctx),
		OrderID:         id,
		From:            from,
		To:              to,
		ServerConfirmed: confirmed,
		OccurredAt:      srv.now(),
	}

	pubCtx, cancel := context.WithTimeout(deliverycontext.Detach(ctx), publishTimeout)
	defer cancel()

	if err := srv.publisher.PublishOrderEvent(pubCtx, event); err != nil {
		srv.loggerFor(ctx).Warn("Failed to publish order event", "orderID", id, "to", to, "error", err)
	}
}
