package handler

import (
	"log/slog"
	"net/http"

	"brew/internal/delivery/http/response"
	"brew/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler exposes the cached catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// GetCatalog returns coffees, payment methods and delivery methods as currently cached.
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.Snapshot(), "Catalog retrieved")
}

// ReloadCatalog refetches the whole catalog. Partial failures still answer 200; the notice
// feed carries the details.
func (h *CatalogHandler) ReloadCatalog(c echo.Context) error {
	h.catalogUC.LoadAll(c.Request().Context())

	message := "Catalog reloaded"
	if err := h.catalogUC.LastError(); err != nil {
		h.logger.Warn("Catalog reloaded with errors", slog.Any("error", err))
		message = "Catalog reloaded with errors"
	}

	return response.Success(c, http.StatusOK, h.catalogUC.Snapshot(), message)
}
