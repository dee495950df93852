package telemetry

import (
	"context"
	"log/slog"
	"time"

	"brew/config"
	"brew/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.uber.org/fx"
)

const defaultExportInterval = 30 * time.Second

// ProviderParams holds dependencies for the meter provider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMeterProvider exports metrics over OTLP/gRPC when telemetry is enabled and
// records nothing otherwise.
func NewMeterProvider(params ProviderParams) (metric.MeterProvider, error) {
	cfg := params.Config.Telemetry
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Telemetry disabled, using no-op meter provider")

		return noop.NewMeterProvider(), nil
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(params.Ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create metric exporter")
	}

	interval := cfg.ExportInterval
	if interval <= 0 {
		interval = defaultExportInterval
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			attribute.String("service.name", params.Config.Env.ServiceName),
			attribute.String("deployment.environment", params.Config.Env.Env),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resource")
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(interval),
		)),
	)
	otel.SetMeterProvider(provider)

	params.Logger.Info("Telemetry initialized",
		slog.String("endpoint", cfg.OTLPEndpoint),
		slog.Duration("interval", interval),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Shutting down meter provider")

			return errors.WithStack(provider.Shutdown(ctx))
		},
	})

	return provider, nil
}

// Module provides the telemetry FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewMeterProvider,
		NewLifecycleMetrics,
	),
)
