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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile always refetches the profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUC.LoadUserProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved")
}
