package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the echo.Context key holding the request ID for response envelopes.
	KeyRequestID ContextKey = "request_id"

	keyScope ContextKey = "request_scope"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// scope is what a kiosk request carries into the order workflow. The ID and logger travel
// together so a background step or event publish logs under the request that started it.
type scope struct {
	requestID string
	logger    *slog.Logger
}

// SetRequestID records the request ID on the echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithScope attaches the request ID and its child logger to ctx. A nil logger keeps the one
// already attached, if any.
func WithScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	if logger == nil {
		if prev, ok := ctx.Value(keyScope).(scope); ok {
			logger = prev.logger
		}
	}

	return context.WithValue(ctx, keyScope, scope{requestID: requestID, logger: logger})
}

// RequestID returns the request ID attached to ctx, or "" for work not started by a request.
func RequestID(ctx context.Context) string {
	s, _ := ctx.Value(keyScope).(scope)

	return s.requestID
}

// Logger returns the request-scoped logger, falling back to fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := ctx.Value(keyScope).(scope); ok && s.logger != nil {
		return s.logger
	}

	return fallback
}

// Detach returns a background context that keeps the request scope of ctx but none of its
// deadline or cancellation. Lifecycle steps scheduled from a request outlive the request.
func Detach(ctx context.Context) context.Context {
	s, ok := ctx.Value(keyScope).(scope)
	if !ok {
		return context.Background()
	}

	return context.WithValue(context.Background(), keyScope, s)
}
