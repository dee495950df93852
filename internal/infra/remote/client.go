// Package remote is the HTTP/JSON adapter to the coffee service. It implements the
// repository interfaces and normalizes every response before it reaches the domain.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"brew/config"
	deliverycontext "brew/internal/delivery/context"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 4 << 20
)

// Client is a typed client for the coffee service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	userAgent  string
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout bounds every call, both through the request context and the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimit throttles outgoing calls to rps requests per second. Zero disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil

			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithUserAgent sets the User-Agent header of every call.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) { c.userAgent = userAgent }
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithClock sets the time source used for timestamps the service leaves out.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	c.httpClient.Timeout = c.timeout

	return c
}

// Params holds dependencies for the Client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Client from configuration
func NewClient(params Params) *Client {
	cfg := params.Config.Remote

	return New(cfg.BaseURL,
		WithTimeout(cfg.Timeout),
		WithRateLimit(cfg.RateLimit, cfg.Burst),
		WithUserAgent(cfg.UserAgent),
		WithLogger(params.Logger),
	)
}

func (c *Client) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, c.logger)
}

// do performs one call and decodes a JSON answer into out. Every failure is a RemoteCallError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fail := func(status int, msg string, cause error) error {
		return &domainerrors.RemoteCallError{Method: method, Path: path, Status: status, Msg: msg, Cause: cause}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fail(0, "", errors.Wrap(err, "rate limiter"))
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail(0, "", errors.Wrap(err, "encode request"))
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fail(0, "", errors.WithStack(err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := c.loggerFor(ctx)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Remote call failed", "method", method, "path", path, "error", err)

		return fail(0, "", errors.WithStack(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fail(resp.StatusCode, "", errors.Wrap(err, "read response"))
	}

	logger.Debug("Remote call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fail(resp.StatusCode, errorMessage(resp.StatusCode, raw), nil)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fail(resp.StatusCode, "malformed response", errors.Wrap(err, "decode response"))
	}

	return nil
}

// errorMessage prefers the message field of a JSON error body and falls back to the status text.
func errorMessage(status int, raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if msg := strings.TrimSpace(body.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(body.Error); msg != "" {
			return msg
		}
	}

	if text := http.StatusText(status); text != "" {
		return text
	}

	return "unexpected status"
}
