package handler

import (
	"log/slog"
	"net/http"

	"brew/internal/delivery/http/response"
	"brew/internal/errors"
	"brew/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SelectionHandlerParams holds dependencies for SelectionHandler, injected by Fx.
type SelectionHandlerParams struct {
	fx.In

	SelectionUC usecase.SelectionUsecase
	Logger      *slog.Logger
}

type SelectionHandler struct {
	selectionUC usecase.SelectionUsecase
	logger      *slog.Logger
}

func NewSelectionHandler(params SelectionHandlerParams) *SelectionHandler {
	return &SelectionHandler{
		selectionUC: params.SelectionUC,
		logger:      params.Logger,
	}
}

type selectRequest struct {
	ID string `json:"id" validate:"required"`
}

func (h *SelectionHandler) GetSelection(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.selectionUC.Current(), "Selection retrieved")
}

func (h *SelectionHandler) SelectCoffee(c echo.Context) error {
	return h.selectBy(c, h.selectionUC.SelectCoffeeByID, "Coffee selected")
}

func (h *SelectionHandler) SelectPayment(c echo.Context) error {
	return h.selectBy(c, h.selectionUC.SelectPaymentByID, "Payment method selected")
}

func (h *SelectionHandler) SelectDelivery(c echo.Context) error {
	return h.selectBy(c, h.selectionUC.SelectDeliveryByID, "Delivery method selected")
}

func (h *SelectionHandler) ClearSelection(c echo.Context) error {
	h.selectionUC.Clear()

	return response.Success(c, http.StatusOK, h.selectionUC.Current(), "Selection cleared")
}

func (h *SelectionHandler) selectBy(c echo.Context, selectFn func(id string) error, message string) error {
	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := selectFn(req.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.selectionUC.Current(), message)
}
