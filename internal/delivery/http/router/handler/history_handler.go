package handler

import (
	"log/slog"
	"net/http"

	"brew/internal/delivery/http/response"
	"brew/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
	Logger    *slog.Logger
}

// HistoryHandler serves past orders, payments and analytics. Remote failures surface as empty
// data plus a notice, never as an error status.
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
	logger    *slog.Logger
}

func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{
		historyUC: params.HistoryUC,
		logger:    params.Logger,
	}
}

func (h *HistoryHandler) ListOrders(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.historyUC.LoadOrderHistory(c.Request().Context()), "Order history retrieved")
}

func (h *HistoryHandler) ListPayments(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.historyUC.LoadPaymentHistory(c.Request().Context()), "Payment history retrieved")
}

// Board summarizes the cached order history. It does not refetch.
func (h *HistoryHandler) Board(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.historyUC.Board(), "Order board retrieved")
}

func (h *HistoryHandler) OrdersSummary(c echo.Context) error {
	summary := h.historyUC.OrdersSummary(c.Request().Context())
	if summary == nil {
		return response.Success(c, http.StatusOK, nil, "Orders summary unavailable")
	}

	return response.Success(c, http.StatusOK, summary, "Orders summary retrieved")
}

func (h *HistoryHandler) UserStats(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "user id is required")
	}

	stats := h.historyUC.UserStats(c.Request().Context(), userID)
	if stats == nil {
		return response.Success(c, http.StatusOK, nil, "User stats unavailable")
	}

	return response.Success(c, http.StatusOK, stats, "User stats retrieved")
}
