package remote

import (
	"go.uber.org/fx"
)

// Module provides the coffee service client and the repositories built on it
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewCatalogRepository,
		NewOrderRepository,
		NewPaymentRepository,
		NewUserRepository,
		NewAnalyticsRepository,
	),
)
