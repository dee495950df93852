package handler

import (
	"net/http"
	"strconv"

	"brew/internal/delivery/http/response"
	"brew/internal/domain/entity"
	"brew/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NoticeHandlerParams holds dependencies for NoticeHandler, injected by Fx.
type NoticeHandlerParams struct {
	fx.In

	Notifier service.Notifier
}

// NoticeHandler lets a UI poll the notice feed.
type NoticeHandler struct {
	notifier service.Notifier
}

func NewNoticeHandler(params NoticeHandlerParams) *NoticeHandler {
	return &NoticeHandler{notifier: params.Notifier}
}

// ListNotices returns the notices after the id given in ?after=, oldest first.
func (h *NoticeHandler) ListNotices(c echo.Context) error {
	var after uint64
	if raw := c.QueryParam("after"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "after must be a notice id")
		}
		after = parsed
	}

	notices := h.notifier.Since(after)
	if notices == nil {
		notices = []entity.Notice{}
	}

	return response.Success(c, http.StatusOK, notices, "Notices retrieved")
}
