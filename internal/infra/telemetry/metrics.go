// Package telemetry records order lifecycle metrics through OpenTelemetry.
package telemetry

import (
	"context"

	"brew/internal/domain/entity"
	"brew/internal/domain/service"
	"brew/internal/errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "brew/lifecycle"

type lifecycleMetrics struct {
	submissions metric.Int64Counter
	transitions metric.Int64Counter
	rejections  metric.Int64Counter
	stale       metric.Int64Counter
}

// NewLifecycleMetrics creates the lifecycle counters on provider.
func NewLifecycleMetrics(provider metric.MeterProvider) (service.LifecycleMetrics, error) {
	meter := provider.Meter(meterName)

	submissions, err := meter.Int64Counter("brew.order.submissions",
		metric.WithDescription("Order submissions by outcome"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create submissions counter")
	}

	transitions, err := meter.Int64Counter("brew.order.transitions",
		metric.WithDescription("Status transitions applied to the active order"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create transitions counter")
	}

	rejections, err := meter.Int64Counter("brew.payment.rejections",
		metric.WithDescription("Payment confirmations rejected by validation"),
		metric.WithUnit("{payment}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create rejections counter")
	}

	stale, err := meter.Int64Counter("brew.order.stale_responses",
		metric.WithDescription("Responses dropped because the order changed meanwhile"),
		metric.WithUnit("{response}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create stale responses counter")
	}

	return &lifecycleMetrics{
		submissions: submissions,
		transitions: transitions,
		rejections:  rejections,
		stale:       stale,
	}, nil
}

func (m *lifecycleMetrics) OrderSubmitted(ctx context.Context, succeeded bool) {
	m.submissions.Add(ctx, 1, metric.WithAttributes(attribute.Bool("succeeded", succeeded)))
}

func (m *lifecycleMetrics) StatusTransitioned(ctx context.Context, to entity.OrderStatus, serverConfirmed bool) {
	m.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", to.String()),
		attribute.Bool("server_confirmed", serverConfirmed),
	))
}

func (m *lifecycleMetrics) PaymentRejected(ctx context.Context, paymentType entity.PaymentType) {
	m.rejections.Add(ctx, 1, metric.WithAttributes(attribute.String("payment_type", string(paymentType))))
}

func (m *lifecycleMetrics) StaleResponseDropped(ctx context.Context, operation string) {
	m.stale.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}
