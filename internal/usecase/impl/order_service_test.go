package impl

import (
	"context"
	"testing"
	"time"

	"brew/config"
	"brew/internal/domain/entity"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/errors"
	"brew/internal/infra/notice"
	"brew/internal/infra/telemetry"
	mockRepo "brew/internal/mocks/repository"
	mockService "brew/internal/mocks/service"
	mockUsecase "brew/internal/mocks/usecase"
	"brew/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orders    *mockRepo.MockOrderRepository
	selection *mockUsecase.MockSelectionUsecase
	publisher *mockService.MockEventPublisher
	scheduler *manualScheduler
	feed      *notice.Feed
	reader    *sdkmetric.ManualReader
	events    []entity.OrderEvent
	now       time.Time
}

func createTestOrderService(t *testing.T) *orderServiceFixtures {
	f := &orderServiceFixtures{
		orders:    mockRepo.NewMockOrderRepository(t),
		selection: mockUsecase.NewMockSelectionUsecase(t),
		publisher: mockService.NewMockEventPublisher(t),
		scheduler: newManualScheduler(),
		feed:      notice.NewFeed(20, discardLogger()),
		reader:    sdkmetric.NewManualReader(),
		now:       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	f.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *entity.OrderEvent) error {
			f.events = append(f.events, *event)

			return nil
		}).
		Maybe()

	metrics, err := telemetry.NewLifecycleMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(f.reader)))
	require.NoError(t, err)

	f.service = NewOrderService(OrderServiceParams{
		Orders:    f.orders,
		Selection: f.selection,
		Scheduler: f.scheduler,
		Notifier:  f.feed,
		Publisher: f.publisher,
		Metrics:   metrics,
		Config: &config.Config{
			Lifecycle: &config.LifecycleConfig{StepDelay: 5 * time.Second, ResumeDelay: 2 * time.Second},
		},
		Logger: discardLogger(),
		Now:    func() time.Time { return f.now },
	})

	return f
}

func (f *orderServiceFixtures) lastNotice(t *testing.T) entity.Notice {
	t.Helper()

	notices := f.feed.Since(0)
	require.NotEmpty(t, notices)

	return notices[len(notices)-1]
}

func (f *orderServiceFixtures) expectCreate(id string) {
	f.orders.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(&entity.Order{ID: id, Status: entity.OrderStatusPending, CreatedAt: f.now.Add(time.Second)}, nil).
		Once()
}

func (f *orderServiceFixtures) expectUpdate(id string, status entity.OrderStatus) {
	f.orders.EXPECT().
		UpdateStatus(mock.Anything, id, status).
		Return(&entity.StatusUpdate{ID: id, Status: status, StatusDate: f.now}, nil).
		Once()
}

func TestOrderService_Submit_Success(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.selection.EXPECT().Current().Return(sampleSelection(entity.PaymentTypeCard))
	f.orders.EXPECT().
		Create(ctx, &entity.CreateOrderRequest{
			CoffeeID:   "coffee-1",
			PaymentID:  "card",
			DeliveryID: "vehicle-1",
			Status:     "pending",
			TotalPrice: 5000,
		}).
		RunAndReturn(func(context.Context, *entity.CreateOrderRequest) (*entity.Order, error) {
			assert.True(t, f.service.Processing())

			return &entity.Order{ID: "srv-1", Status: "PENDING", OrderNumber: "A-17"}, nil
		})

	order, err := f.service.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, "srv-1", order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "A-17", order.OrderNumber)
	assert.Equal(t, "Espresso", order.Coffee.Name)
	require.NotNil(t, order.Delivery)
	assert.Equal(t, int64(5000), order.Total())
	assert.Equal(t, f.now, order.CreatedAt)
	assert.False(t, f.service.Processing())

	delay, ok := f.scheduler.Delay("srv-1")
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, delay)

	require.Len(t, f.events, 1)
	assert.Equal(t, entity.OrderStatusPending, f.events[0].To)
	assert.Equal(t, "srv-1", f.events[0].OrderID)
	assert.Equal(t, entity.NoticeSuccess, f.lastNotice(t).Level)
	assert.Equal(t, int64(1), counterTotal(t, f.reader, "brew.order.submissions"))
}

func TestOrderService_Submit_MissingSelection(t *testing.T) {
	f := createTestOrderService(t)

	coffee := sampleCoffee()
	f.selection.EXPECT().Current().Return(usecase.Selection{Coffee: &coffee})

	order, err := f.service.Submit(context.Background())

	require.Error(t, err)
	assert.Nil(t, order)

	var missing *domainerrors.MissingSelectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"payment", "delivery"}, missing.Missing)
	assert.Nil(t, f.service.ActiveOrder())
}

func TestOrderService_Submit_RemoteFailure(t *testing.T) {
	f := createTestOrderService(t)

	remoteErr := &domainerrors.RemoteCallError{Method: "POST", Path: "/api/orders", Status: 500, Msg: "boom"}
	f.selection.EXPECT().Current().Return(sampleSelection(entity.PaymentTypeCash))
	f.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, remoteErr).Once()

	order, err := f.service.Submit(context.Background())

	require.Error(t, err)
	assert.Nil(t, order)

	var submission *domainerrors.OrderSubmissionError
	require.ErrorAs(t, err, &submission)
	assert.True(t, errors.Is(err, remoteErr))
	assert.Nil(t, f.service.ActiveOrder())
	assert.False(t, f.service.Processing())
	assert.Equal(t, entity.NoticeError, f.lastNotice(t).Level)
	assert.Empty(t, f.events)
}

func TestOrderService_Submit_RejectsWhileOrderInProgress(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusBrewing, entity.PaymentTypeCard))
	f.selection.EXPECT().Current().Return(sampleSelection(entity.PaymentTypeCard))

	_, err := f.service.Submit(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderInProgress)
	assert.Equal(t, "srv-1", f.service.ActiveOrder().ID)
}

func TestOrderService_Submit_ReplacesCompletedOrder(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("old", entity.OrderStatusCompleted, entity.PaymentTypeCard))
	f.selection.EXPECT().Current().Return(sampleSelection(entity.PaymentTypeCard))
	f.expectCreate("new")

	order, err := f.service.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, "new", order.ID)
}

func TestOrderService_AutoAdvance_StopsAtPaymentGate(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.selection.EXPECT().Current().Return(sampleSelection(entity.PaymentTypeCard))
	f.expectCreate("srv-1")
	_, err := f.service.Submit(ctx)
	require.NoError(t, err)

	f.expectUpdate("srv-1", entity.OrderStatusBrewing)
	f.scheduler.Fire(t, "srv-1")
	assert.Equal(t, entity.OrderStatusBrewing, f.service.ActiveOrder().Status)

	f.expectUpdate("srv-1", entity.OrderStatusPaying)
	f.scheduler.Fire(t, "srv-1")
	assert.Equal(t, entity.OrderStatusPaying, f.service.ActiveOrder().Status)

	assert.False(t, f.scheduler.Pending("srv-1"), "paying waits for the user")
	require.Len(t, f.events, 3)
	assert.Equal(t, entity.OrderStatusPending, f.events[1].From)
	assert.Equal(t, entity.OrderStatusBrewing, f.events[1].To)
	assert.Equal(t, entity.OrderStatusBrewing, f.events[2].From)
	assert.Equal(t, entity.OrderStatusPaying, f.events[2].To)
	assert.True(t, f.events[2].ServerConfirmed)
}

func TestOrderService_AdvanceStatus_RejectsSkips(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusPending, entity.PaymentTypeCard))

	tests := []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusPaying,
		entity.OrderStatusCompleted,
		entity.OrderStatus("unknown"),
	}
	for _, target := range tests {
		t.Run(string(target), func(t *testing.T) {
			transition, err := f.service.AdvanceStatus(ctx, target)

			require.Error(t, err)
			assert.Nil(t, transition)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
			assert.Equal(t, entity.OrderStatusPending, f.service.ActiveOrder().Status)
		})
	}
}

func TestOrderService_AdvanceStatus_CannotLeavePaymentGate(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusPaying, entity.PaymentTypeCard))

	transition, err := f.service.AdvanceStatus(ctx, entity.OrderStatusDelivering)

	require.Error(t, err)
	assert.Nil(t, transition)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Equal(t, entity.OrderStatusPaying, f.service.ActiveOrder().Status)
	assert.False(t, f.scheduler.Pending("srv-1"))
	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_AdvanceStatus_NoActiveOrder(t *testing.T) {
	f := createTestOrderService(t)

	_, err := f.service.AdvanceStatus(context.Background(), entity.OrderStatusBrewing)

	assert.ErrorIs(t, err, domainerrors.ErrNoActiveOrder)
}

func TestOrderService_AdvanceStatus_RemoteFailureAppliesLocally(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusPending, entity.PaymentTypeCard))

	remoteErr := &domainerrors.RemoteCallError{Method: "PATCH", Path: "/api/orders/srv-1/status", Status: 503, Msg: "Service Unavailable"}
	f.orders.EXPECT().UpdateStatus(mock.Anything, "srv-1", entity.OrderStatusBrewing).Return(nil, remoteErr).Once()

	transition, err := f.service.AdvanceStatus(ctx, entity.OrderStatusBrewing)

	require.NoError(t, err)
	assert.False(t, transition.ServerConfirmed)
	assert.True(t, transition.Diverged())
	assert.Equal(t, remoteErr, transition.Cause)
	assert.Equal(t, entity.OrderStatusBrewing, transition.To)
	assert.Equal(t, entity.OrderStatusBrewing, f.service.ActiveOrder().Status)
	assert.Equal(t, entity.NoticeWarning, f.lastNotice(t).Level)
	assert.True(t, f.scheduler.Pending("srv-1"))
}

func TestOrderService_AdvanceStatus_EchoBehindTargetKeepsTarget(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusBrewing, entity.PaymentTypeCard))
	f.orders.EXPECT().
		UpdateStatus(mock.Anything, "srv-1", entity.OrderStatusPaying).
		Return(&entity.StatusUpdate{ID: "srv-1", Status: entity.OrderStatusPending}, nil).
		Once()

	transition, err := f.service.AdvanceStatus(ctx, entity.OrderStatusPaying)

	require.NoError(t, err)
	assert.False(t, transition.ServerConfirmed)
	require.Error(t, transition.Cause)
	assert.Equal(t, entity.OrderStatusPaying, f.service.ActiveOrder().Status)
}

func TestOrderService_AdvanceStatus_EchoPastGateHoldsAtGate(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusBrewing, entity.PaymentTypeCard))
	f.orders.EXPECT().
		UpdateStatus(mock.Anything, "srv-1", entity.OrderStatusPaying).
		Return(&entity.StatusUpdate{ID: "srv-1", Status: entity.OrderStatusDelivering}, nil).
		Once()

	transition, err := f.service.AdvanceStatus(ctx, entity.OrderStatusPaying)

	require.NoError(t, err)
	assert.True(t, transition.ServerConfirmed)
	assert.Equal(t, entity.OrderStatusPaying, transition.To)
	assert.Equal(t, entity.OrderStatusPaying, f.service.ActiveOrder().Status)
	assert.False(t, f.scheduler.Pending("srv-1"), "paying waits for the user")
}

func TestOrderService_ConfirmPayment_EchoAheadIsAdopted(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusPaying, entity.PaymentTypeCard))
	f.orders.EXPECT().
		UpdateStatus(mock.Anything, "srv-1", entity.OrderStatusDelivering).
		Return(&entity.StatusUpdate{ID: "srv-1", Status: entity.OrderStatusCompleted}, nil).
		Once()

	transition, err := f.service.ConfirmPayment(ctx, usecase.PaymentDetails{CardNumber: "1234567890123456"})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, transition.To)
	assert.Equal(t, entity.OrderStatusCompleted, f.service.ActiveOrder().Status)
	assert.False(t, f.scheduler.Pending("srv-1"))
}

func TestOrderService_CardOrderEndToEnd(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.selection.EXPECT().Current().Return(sampleSelection(entity.PaymentTypeCard))
	f.expectCreate("srv-1")

	order, err := f.service.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, f.service.ActiveOrder().Status)
	assert.Equal(t, int64(5000), order.Total())

	f.expectUpdate("srv-1", entity.OrderStatusBrewing)
	f.scheduler.Fire(t, "srv-1")
	assert.Equal(t, entity.OrderStatusBrewing, f.service.ActiveOrder().Status)

	f.expectUpdate("srv-1", entity.OrderStatusPaying)
	f.scheduler.Fire(t, "srv-1")
	assert.Equal(t, entity.OrderStatusPaying, f.service.ActiveOrder().Status)
	assert.False(t, f.scheduler.Pending("srv-1"))

	f.expectUpdate("srv-1", entity.OrderStatusDelivering)
	transition, err := f.service.ConfirmPayment(ctx, usecase.PaymentDetails{CardNumber: "1234567890123456"})
	require.NoError(t, err)
	assert.True(t, transition.ServerConfirmed)
	assert.Equal(t, entity.OrderStatusDelivering, f.service.ActiveOrder().Status)

	f.expectUpdate("srv-1", entity.OrderStatusCompleted)
	f.scheduler.Fire(t, "srv-1")

	active := f.service.ActiveOrder()
	assert.Equal(t, entity.OrderStatusCompleted, active.Status)
	assert.Equal(t, int64(5000), active.Total())
	assert.False(t, f.scheduler.Pending("srv-1"))
	assert.Len(t, f.events, 5)
}

func TestOrderService_ConfirmPayment_CashMustCoverTotal(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusPaying, entity.PaymentTypeCash))

	transition, err := f.service.ConfirmPayment(ctx, usecase.PaymentDetails{CashAmount: "4999"})

	require.Error(t, err)
	assert.Nil(t, transition)
	var invalid *domainerrors.PaymentValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, entity.OrderStatusPaying, f.service.ActiveOrder().Status)
	assert.Equal(t, int64(1), counterTotal(t, f.reader, "brew.payment.rejections"))

	f.expectUpdate("srv-1", entity.OrderStatusDelivering)

	transition, err = f.service.ConfirmPayment(ctx, usecase.PaymentDetails{CashAmount: "5000"})

	require.NoError(t, err)
	assert.True(t, transition.ServerConfirmed)
	assert.Equal(t, entity.OrderStatusDelivering, f.service.ActiveOrder().Status)

	delay, ok := f.scheduler.Delay("srv-1")
	require.True(t, ok)
	assert.Equal(t, 7*time.Second, delay)

	f.expectUpdate("srv-1", entity.OrderStatusCompleted)
	f.scheduler.Fire(t, "srv-1")

	assert.Equal(t, entity.OrderStatusCompleted, f.service.ActiveOrder().Status)
	assert.False(t, f.scheduler.Pending("srv-1"))
}

func TestOrderService_ConfirmPayment_Validation(t *testing.T) {
	tests := []struct {
		name        string
		paymentType entity.PaymentType
		details     usecase.PaymentDetails
		wantValid   bool
	}{
		{name: "card 16 digits", paymentType: entity.PaymentTypeCard, details: usecase.PaymentDetails{CardNumber: "4242424242424242"}, wantValid: true},
		{name: "card 16 digits from example", paymentType: entity.PaymentTypeCard, details: usecase.PaymentDetails{CardNumber: "1234567890123456"}, wantValid: true},
		{name: "card 15 digits", paymentType: entity.PaymentTypeCard, details: usecase.PaymentDetails{CardNumber: "123456789012345"}},
		{name: "card with trailing letters", paymentType: entity.PaymentTypeCard, details: usecase.PaymentDetails{CardNumber: "12345678901234ab"}},
		{name: "card too short", paymentType: entity.PaymentTypeCard, details: usecase.PaymentDetails{CardNumber: "424242"}},
		{name: "card with letters", paymentType: entity.PaymentTypeCard, details: usecase.PaymentDetails{CardNumber: "42424242424242ab"}},
		{name: "card with spaces", paymentType: entity.PaymentTypeCard, details: usecase.PaymentDetails{CardNumber: "4242 4242 4242 42"}},
		{name: "mobile complete", paymentType: entity.PaymentTypeMobile, details: usecase.PaymentDetails{PhoneNumber: "0341234567", SecretCode: "1234"}, wantValid: true},
		{name: "mobile blank secret", paymentType: entity.PaymentTypeMobile, details: usecase.PaymentDetails{PhoneNumber: "0341234567", SecretCode: "   "}},
		{name: "mobile missing phone", paymentType: entity.PaymentTypeMobile, details: usecase.PaymentDetails{SecretCode: "1234"}},
		{name: "cash above total", paymentType: entity.PaymentTypeCash, details: usecase.PaymentDetails{CashAmount: "6000.5"}, wantValid: true},
		{name: "cash not a number", paymentType: entity.PaymentTypeCash, details: usecase.PaymentDetails{CashAmount: "lots"}},
		{name: "cash empty", paymentType: entity.PaymentTypeCash},
		{name: "unknown method", paymentType: entity.PaymentType("crypto"), details: usecase.PaymentDetails{CardNumber: "4242424242424242"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t)
			ctx := context.Background()

			f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusPaying, tt.paymentType))
			if tt.wantValid {
				f.expectUpdate("srv-1", entity.OrderStatusDelivering)
			}

			_, err := f.service.ConfirmPayment(ctx, tt.details)

			if tt.wantValid {
				require.NoError(t, err)
				assert.Equal(t, entity.OrderStatusDelivering, f.service.ActiveOrder().Status)

				return
			}

			var invalid *domainerrors.PaymentValidationError
			require.ErrorAs(t, err, &invalid)
			assert.NotEmpty(t, invalid.Reason)
			assert.Equal(t, entity.OrderStatusPaying, f.service.ActiveOrder().Status)
		})
	}
}

func TestOrderService_ConfirmPayment_WrongState(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	_, err := f.service.ConfirmPayment(ctx, usecase.PaymentDetails{CashAmount: "5000"})
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveOrder)

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusBrewing, entity.PaymentTypeCash))

	_, err = f.service.ConfirmPayment(ctx, usecase.PaymentDetails{CashAmount: "5000"})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotExpected)
}

func TestOrderService_Cancel_DropsInFlightSubmit(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.selection.EXPECT().Current().Return(sampleSelection(entity.PaymentTypeCard))
	f.orders.EXPECT().
		Create(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.CreateOrderRequest) (*entity.Order, error) {
			f.service.Cancel()

			return &entity.Order{ID: "srv-1", Status: entity.OrderStatusPending}, nil
		})

	order, err := f.service.Submit(ctx)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrStaleResponse)
	assert.Nil(t, f.service.ActiveOrder())
	assert.False(t, f.service.Processing())
	assert.False(t, f.scheduler.Pending("srv-1"))
	assert.Equal(t, int64(1), counterTotal(t, f.reader, "brew.order.stale_responses"))
}

func TestOrderService_Cancel_ScheduledStepNeverFires(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.selection.EXPECT().Current().Return(sampleSelection(entity.PaymentTypeCard))
	f.expectCreate("srv-1")
	_, err := f.service.Submit(ctx)
	require.NoError(t, err)

	step, ok := f.scheduler.Take("srv-1")
	require.True(t, ok)

	f.service.Cancel()
	step()

	assert.Nil(t, f.service.ActiveOrder())
	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_AdvanceResponseDroppedAfterResume(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusPending, entity.PaymentTypeCard))
	f.orders.EXPECT().
		UpdateStatus(mock.Anything, "srv-1", entity.OrderStatusBrewing).
		RunAndReturn(func(context.Context, string, entity.OrderStatus) (*entity.StatusUpdate, error) {
			f.service.Resume(ctx, sampleOrder("srv-2", entity.OrderStatusDelivering, entity.PaymentTypeCard))

			return &entity.StatusUpdate{ID: "srv-1", Status: entity.OrderStatusBrewing}, nil
		})

	_, err := f.service.AdvanceStatus(ctx, entity.OrderStatusBrewing)

	assert.ErrorIs(t, err, domainerrors.ErrStaleResponse)
	active := f.service.ActiveOrder()
	require.NotNil(t, active)
	assert.Equal(t, "srv-2", active.ID)
	assert.Equal(t, entity.OrderStatusDelivering, active.Status)
}

func TestOrderService_Reset_ClearsSelection(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusBrewing, entity.PaymentTypeCard))
	f.selection.EXPECT().Clear().Once()

	f.service.Reset()

	assert.Nil(t, f.service.ActiveOrder())
	assert.False(t, f.scheduler.Pending("srv-1"))
}

func TestOrderService_Resume_ContinuesProgression(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatus("Delivering"), entity.PaymentTypeCard))

	state := f.service.Snapshot()
	require.NotNil(t, state.Order)
	assert.Equal(t, entity.OrderStatusDelivering, state.Order.Status)
	assert.False(t, state.Processing)

	f.expectUpdate("srv-1", entity.OrderStatusCompleted)
	f.scheduler.Fire(t, "srv-1")

	assert.Equal(t, entity.OrderStatusCompleted, f.service.ActiveOrder().Status)
	assert.False(t, f.scheduler.Pending("srv-1"))
}

func TestOrderService_Resume_CompletedOrderIsNotRearmed(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.service.Resume(ctx, sampleOrder("srv-1", entity.OrderStatusCompleted, entity.PaymentTypeCard))

	require.NotNil(t, f.service.ActiveOrder())
	assert.Equal(t, entity.OrderStatusCompleted, f.service.ActiveOrder().Status)
	assert.False(t, f.scheduler.Pending("srv-1"))
}

func TestOrderService_ActiveOrderIsACopy(t *testing.T) {
	f := createTestOrderService(t)

	f.service.Resume(context.Background(), sampleOrder("srv-1", entity.OrderStatusBrewing, entity.PaymentTypeCard))

	active := f.service.ActiveOrder()
	active.Status = entity.OrderStatusCompleted
	active.Delivery.Price = 0

	fresh := f.service.ActiveOrder()
	assert.Equal(t, entity.OrderStatusBrewing, fresh.Status)
	assert.Equal(t, int64(1000), fresh.Delivery.Price)
}
