package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"brew/internal/delivery/http/response"
	"brew/internal/domain/entity"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/domain/service"
	"brew/internal/errors"
	"brew/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC   usecase.OrderUsecase
	HistoryUC usecase.HistoryUsecase
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// OrderHandler drives the active order.
type OrderHandler struct {
	orderUC   usecase.OrderUsecase
	historyUC usecase.HistoryUsecase
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:   params.OrderUC,
		historyUC: params.HistoryUC,
		qrCode:    params.QRCode,
		logger:    params.Logger,
	}
}

type advanceStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// transitionResponse adds the remote failure, if any, to a status transition.
type transitionResponse struct {
	*entity.StatusTransition
	Warning string `json:"warning,omitempty"`
}

func newTransitionResponse(t *entity.StatusTransition) transitionResponse {
	resp := transitionResponse{StatusTransition: t}
	if t.Cause != nil {
		resp.Warning = t.Cause.Error()
	}

	return resp
}

// SubmitOrder creates an order from the current selection.
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	order, err := h.orderUC.Submit(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order submitted")
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.orderUC.Snapshot(), "Order retrieved")
}

// AdvanceStatus moves the active order one stage forward by hand.
func (h *OrderHandler) AdvanceStatus(c echo.Context) error {
	var req advanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	target := entity.OrderStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !target.Valid() {
		return response.BadRequest(c, "INVALID_STATUS", "unknown order status "+req.Status)
	}

	transition, err := h.orderUC.AdvanceStatus(c.Request().Context(), target)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTransitionResponse(transition), "Order status updated")
}

// ConfirmPayment validates the payment details and releases the order from the paying stage.
func (h *OrderHandler) ConfirmPayment(c echo.Context) error {
	var details usecase.PaymentDetails
	if err := c.Bind(&details); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	transition, err := h.orderUC.ConfirmPayment(c.Request().Context(), details)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTransitionResponse(transition), "Payment confirmed")
}

// CancelOrder drops the active order locally. The service is not told.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	h.orderUC.Cancel()

	return response.Success(c, http.StatusOK, h.orderUC.Snapshot(), "Order cancelled")
}

func (h *OrderHandler) ResetOrder(c echo.Context) error {
	h.orderUC.Reset()

	return response.Success(c, http.StatusOK, h.orderUC.Snapshot(), "Order reset")
}

// ResumeOrder picks up the most recent unfinished order from the service.
func (h *OrderHandler) ResumeOrder(c echo.Context) error {
	order, err := h.historyUC.LoadActiveOrder(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if order == nil {
		return response.Success(c, http.StatusOK, nil, "No order to resume")
	}

	return response.Success(c, http.StatusOK, order, "Order resumed")
}

// Receipt renders the active order's receipt as a PNG QR code once it is paid.
func (h *OrderHandler) Receipt(c echo.Context) error {
	order := h.orderUC.ActiveOrder()
	if order == nil {
		return errors.WithStack(domainerrors.ErrNoActiveOrder)
	}
	if !entity.OrderStatusPaying.Before(order.Status) {
		return errors.WithStack(domainerrors.ErrReceiptUnavailable)
	}

	png, err := h.qrCode.GenerateReceiptQR(order)
	if err != nil {
		return errors.Wrap(err, "failed to generate receipt")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
