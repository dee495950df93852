package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestDetach_KeepsScopeDropsCancellation(t *testing.T) {
	logger := slog.Default().With("request_id", "r-1")
	parent, cancel := context.WithCancel(WithScope(context.Background(), "r-1", logger))
	cancel()

	detached := Detach(parent)

	assert.NoError(t, detached.Err())
	assert.Equal(t, "r-1", RequestID(detached))
	assert.Same(t, logger, Logger(detached, nil))
}

func TestDetach_WithoutScope(t *testing.T) {
	detached := Detach(context.Background())

	assert.Empty(t, RequestID(detached))
	assert.Nil(t, Logger(detached, nil))
}

func TestWithScope_NilLoggerKeepsPrevious(t *testing.T) {
	logger := slog.Default().With("component", "kiosk")
	ctx := WithScope(context.Background(), "first", logger)

	ctx = WithScope(ctx, "second", nil)

	assert.Equal(t, "second", RequestID(ctx))
	assert.Same(t, logger, Logger(ctx, nil))
}

func TestLogger_Fallback(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Same(t, fallback, Logger(WithScope(context.Background(), "r-2", nil), fallback))
}

func TestSetRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	SetRequestID(c, "fixed")

	assert.Equal(t, "fixed", c.Get(string(KeyRequestID)))
}
