package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brew/config"
	deliverycontext "brew/internal/delivery/context"
	"brew/internal/delivery/http/response"
	"brew/internal/delivery/http/router"
	"brew/internal/delivery/http/router/handler"
	"brew/internal/domain/entity"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/infra/notice"
	mockservice "brew/internal/mocks/service"
	mockusecase "brew/internal/mocks/usecase"
	"brew/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	e         *echo.Echo
	catalog   *mockusecase.MockCatalogUsecase
	selection *mockusecase.MockSelectionUsecase
	order     *mockusecase.MockOrderUsecase
	history   *mockusecase.MockHistoryUsecase
	profile   *mockusecase.MockProfileUsecase
	qrCode    *mockservice.MockQRCodeService
	notices   *notice.Feed
}

type envelope struct {
	Success   bool                `json:"success"`
	Code      int                 `json:"code"`
	Message   string              `json:"message"`
	Data      json.RawMessage     `json:"data"`
	Error     *response.ErrorInfo `json:"error"`
	RequestID string              `json:"requestId"`
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	f := &apiFixture{
		catalog:   mockusecase.NewMockCatalogUsecase(t),
		selection: mockusecase.NewMockSelectionUsecase(t),
		order:     mockusecase.NewMockOrderUsecase(t),
		history:   mockusecase.NewMockHistoryUsecase(t),
		profile:   mockusecase.NewMockProfileUsecase(t),
		qrCode:    mockservice.NewMockQRCodeService(t),
		notices:   notice.NewFeed(10, logger),
	}

	f.e = NewEcho(cfg, logger, router.RouterParams{
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: f.catalog, Logger: logger,
		}),
		SelectionHandler: handler.NewSelectionHandler(handler.SelectionHandlerParams{
			SelectionUC: f.selection, Logger: logger,
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: f.order, HistoryUC: f.history, QRCode: f.qrCode, Logger: logger,
		}),
		HistoryHandler: handler.NewHistoryHandler(handler.HistoryHandlerParams{
			HistoryUC: f.history, Logger: logger,
		}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			ProfileUC: f.profile, Logger: logger,
		}),
		NoticeHandler: handler.NewNoticeHandler(handler.NoticeHandlerParams{
			Notifier: f.notices,
		}),
	})

	return f
}

func (f *apiFixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func activeOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:       "order-1",
		Coffee:   entity.Coffee{ID: "coffee-1", Name: "Espresso", Cost: 4000},
		Payment:  &entity.PaymentMethod{ID: "cash", Type: entity.PaymentTypeCash},
		Delivery: &entity.DeliveryMethod{ID: "vehicle-1", Name: "City Bike", Price: 1000},
		Status:   status,
	}
}

func TestHealthCheck(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestRequestID_EchoedAndGenerated(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", decodeEnvelope(t, rec).RequestID)

	rec = f.do(t, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestCatalog_GetAndReload(t *testing.T) {
	f := newAPIFixture(t)
	snapshot := usecase.CatalogSnapshot{
		Coffees:        []entity.Coffee{{ID: "coffee-1", Name: "Espresso", Cost: 4000}},
		PaymentMethods: entity.StaticPaymentMethods(),
	}
	f.catalog.EXPECT().Snapshot().Return(snapshot)
	f.catalog.EXPECT().LoadAll(mock.Anything).Return().Once()
	f.catalog.EXPECT().LastError().Return(errors.New("delivery options unavailable")).Once()

	rec := f.do(t, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), "Espresso")

	rec = f.do(t, http.MethodPost, "/api/catalog/reload", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Catalog reloaded with errors", decodeEnvelope(t, rec).Message)
}

func TestSelection_SelectByID(t *testing.T) {
	f := newAPIFixture(t)
	coffee := entity.Coffee{ID: "coffee-1", Name: "Espresso"}
	f.selection.EXPECT().SelectCoffeeByID("coffee-1").Return(nil).Once()
	f.selection.EXPECT().Current().Return(usecase.Selection{Coffee: &coffee}).Once()

	rec := f.do(t, http.MethodPut, "/api/selection/coffee", `{"id":"coffee-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), "coffee-1")
}

func TestSelection_Errors(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodPut, "/api/selection/payment", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newAPIFixture(t)
		f.selection.EXPECT().SelectDeliveryByID("nope").
			Return(errors.Wrap(domainerrors.ErrNotFound.WithDetails("delivery method nope"), "select delivery")).Once()

		rec := f.do(t, http.MethodPut, "/api/selection/delivery", `{"id":"nope"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
		assert.Equal(t, "delivery method nope", env.Error.Details)
	})
}

func TestSelection_Clear(t *testing.T) {
	f := newAPIFixture(t)
	f.selection.EXPECT().Clear().Return().Once()
	f.selection.EXPECT().Current().Return(usecase.Selection{}).Once()

	rec := f.do(t, http.MethodDelete, "/api/selection", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrder_Submit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().Submit(mock.Anything).Return(activeOrder(entity.OrderStatusPending), nil).Once()

		rec := f.do(t, http.MethodPost, "/api/order", "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"status":"pending"`)
	})

	t.Run("missing selection", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().Submit(mock.Anything).
			Return(nil, domainerrors.NewMissingSelectionError("payment", "delivery")).Once()

		rec := f.do(t, http.MethodPost, "/api/order", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "MISSING_SELECTION", env.Error.Code)
		assert.Equal(t, "payment,delivery", env.Error.Details)
	})

	t.Run("already in progress", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().Submit(mock.Anything).Return(nil, domainerrors.ErrOrderInProgress).Once()

		rec := f.do(t, http.MethodPost, "/api/order", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("remote failure hides details", func(t *testing.T) {
		f := newAPIFixture(t)
		remoteErr := &domainerrors.RemoteCallError{Method: http.MethodPost, Path: "/api/orders", Status: 500, Msg: "boom"}
		f.order.EXPECT().Submit(mock.Anything).Return(nil, domainerrors.NewOrderSubmissionError(remoteErr)).Once()

		rec := f.do(t, http.MethodPost, "/api/order", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "ORDER_SUBMISSION_FAILED", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})
}

func TestOrder_ConfirmPayment(t *testing.T) {
	t.Run("validation failure is 422", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().ConfirmPayment(mock.Anything, usecase.PaymentDetails{CashAmount: "4999"}).
			Return(nil, domainerrors.NewPaymentValidationError("cash amount %d is below the total %d", 4999, 5000)).Once()

		rec := f.do(t, http.MethodPost, "/api/order/payment", `{"cashAmount":"4999"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "PAYMENT_VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "cash amount 4999 is below the total 5000", env.Message)
	})

	t.Run("applied locally carries a warning", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().ConfirmPayment(mock.Anything, usecase.PaymentDetails{CashAmount: "5000"}).
			Return(&entity.StatusTransition{
				OrderID: "order-1",
				From:    entity.OrderStatusPaying,
				To:      entity.OrderStatusDelivering,
				Cause:   errors.New("connection refused"),
			}, nil).Once()

		rec := f.do(t, http.MethodPost, "/api/order/payment", `{"cashAmount":"5000"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var data map[string]any
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
		assert.Equal(t, "delivering", data["to"])
		assert.Equal(t, false, data["serverConfirmed"])
		assert.Equal(t, "connection refused", data["warning"])
	})

	t.Run("not waiting for payment", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().ConfirmPayment(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrPaymentNotExpected).Once()

		rec := f.do(t, http.MethodPost, "/api/order/payment", `{"cardNumber":"4111111111111111"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "PAYMENT_NOT_EXPECTED", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestOrder_AdvanceStatus(t *testing.T) {
	t.Run("status is case-insensitive", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().AdvanceStatus(mock.Anything, entity.OrderStatusBrewing).
			Return(&entity.StatusTransition{OrderID: "order-1", From: entity.OrderStatusPending, To: entity.OrderStatusBrewing, ServerConfirmed: true}, nil).Once()

		rec := f.do(t, http.MethodPut, "/api/order/status", `{"status":" Brewing "}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodPut, "/api/order/status", `{"status":"shipped"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STATUS", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("skipping a stage", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().AdvanceStatus(mock.Anything, entity.OrderStatusCompleted).
			Return(nil, domainerrors.ErrInvalidTransition).Once()

		rec := f.do(t, http.MethodPut, "/api/order/status", `{"status":"completed"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("leaving paying without payment", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().AdvanceStatus(mock.Anything, entity.OrderStatusDelivering).
			Return(nil, domainerrors.ErrInvalidTransition.WithDetails("paying -> delivering requires payment confirmation")).Once()

		rec := f.do(t, http.MethodPut, "/api/order/status", `{"status":"delivering"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "INVALID_TRANSITION", envelope.Error.Code)
		assert.Contains(t, envelope.Error.Details, "payment confirmation")
	})
}

func TestOrder_CancelResetSnapshot(t *testing.T) {
	f := newAPIFixture(t)
	f.order.EXPECT().Cancel().Return().Once()
	f.order.EXPECT().Reset().Return().Once()
	f.order.EXPECT().Snapshot().Return(usecase.OrderState{})

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodDelete, "/api/order", "").Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/order/reset", "").Code)

	rec := f.do(t, http.MethodGet, "/api/order", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"order":null,"processing":false}`, string(decodeEnvelope(t, rec).Data))
}

func TestOrder_Resume(t *testing.T) {
	f := newAPIFixture(t)
	f.history.EXPECT().LoadActiveOrder(mock.Anything).Return(activeOrder(entity.OrderStatusBrewing), nil).Once()
	f.history.EXPECT().LoadActiveOrder(mock.Anything).Return(nil, nil).Once()

	rec := f.do(t, http.MethodPost, "/api/order/resume", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), "order-1")

	rec = f.do(t, http.MethodPost, "/api/order/resume", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No order to resume", decodeEnvelope(t, rec).Message)
}

func TestOrder_Receipt(t *testing.T) {
	t.Run("no active order", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().ActiveOrder().Return(nil).Once()

		rec := f.do(t, http.MethodGet, "/api/order/receipt.png", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "NO_ACTIVE_ORDER", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("not paid yet", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().ActiveOrder().Return(activeOrder(entity.OrderStatusPaying)).Once()

		rec := f.do(t, http.MethodGet, "/api/order/receipt.png", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "RECEIPT_UNAVAILABLE", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("paid order", func(t *testing.T) {
		f := newAPIFixture(t)
		order := activeOrder(entity.OrderStatusDelivering)
		f.order.EXPECT().ActiveOrder().Return(order).Once()
		f.qrCode.EXPECT().GenerateReceiptQR(order).Return([]byte("\x89PNG"), nil).Once()

		rec := f.do(t, http.MethodGet, "/api/order/receipt.png", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "\x89PNG", rec.Body.String())
	})

	t.Run("encoder failure is a 500", func(t *testing.T) {
		f := newAPIFixture(t)
		order := activeOrder(entity.OrderStatusCompleted)
		f.order.EXPECT().ActiveOrder().Return(order).Once()
		f.qrCode.EXPECT().GenerateReceiptQR(order).Return(nil, errors.New("content too long")).Once()

		rec := f.do(t, http.MethodGet, "/api/order/receipt.png", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})
}

func TestHistory_Routes(t *testing.T) {
	f := newAPIFixture(t)
	orders := []entity.Order{*activeOrder(entity.OrderStatusCompleted)}
	f.history.EXPECT().LoadOrderHistory(mock.Anything).Return(orders).Once()
	f.history.EXPECT().LoadPaymentHistory(mock.Anything).Return(nil).Once()
	f.history.EXPECT().Board().Return(entity.OrderBoard{TotalOrders: 1}).Once()
	f.history.EXPECT().OrdersSummary(mock.Anything).Return(nil).Once()
	f.history.EXPECT().UserStats(mock.Anything, "user-1").Return(&entity.UserStats{UserID: "user-1", TotalOrders: 3}).Once()

	rec := f.do(t, http.MethodGet, "/api/history/orders", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), "order-1")

	rec = f.do(t, http.MethodGet, "/api/history/payments", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/history/board", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/analytics/orders-summary", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Orders summary unavailable", decodeEnvelope(t, rec).Message)

	rec = f.do(t, http.MethodGet, "/api/analytics/users/user-1/stats", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), "user-1")
}

func TestProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newAPIFixture(t)
		f.profile.EXPECT().LoadUserProfile(mock.Anything).
			Return(&entity.UserProfile{ID: "user-1", Name: "Awa"}, nil).Once()

		rec := f.do(t, http.MethodGet, "/api/profile", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), "Awa")
	})

	t.Run("no user", func(t *testing.T) {
		f := newAPIFixture(t)
		f.profile.EXPECT().LoadUserProfile(mock.Anything).
			Return(nil, errors.Wrap(&domainerrors.NoUserFoundError{}, "failed to get user profile")).Once()

		rec := f.do(t, http.MethodGet, "/api/profile", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NO_USER_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestNotices(t *testing.T) {
	f := newAPIFixture(t)
	f.notices.Notify(entity.NoticeWarning, "payment methods unavailable")
	f.notices.Notify(entity.NoticeInfo, "order placed")

	rec := f.do(t, http.MethodGet, "/api/notices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []entity.Notice
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &all))
	require.Len(t, all, 2)

	rec = f.do(t, http.MethodGet, "/api/notices?after=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var later []entity.Notice
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &later))
	require.Len(t, later, 1)
	assert.Equal(t, "order placed", later[0].Message)

	rec = f.do(t, http.MethodGet, "/api/notices?after=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeEnvelope(t, rec).Error.Code)
}
