package main

import (
	"context"
	"log/slog"
	"os"

	"brew/config"
	"brew/internal/delivery"
	"brew/internal/delivery/http"
	"brew/internal/delivery/http/router/handler"
	logs "brew/internal/infra/log"
	"brew/internal/infra/notice"
	"brew/internal/infra/pubsub"
	"brew/internal/infra/qrcode"
	"brew/internal/infra/remote"
	"brew/internal/infra/scheduler"
	"brew/internal/infra/telemetry"
	"brew/internal/usecase"
	"brew/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type warmUpParams struct {
	fx.In

	Lc      fx.Lifecycle
	Catalog usecase.CatalogUsecase
	History usecase.HistoryUsecase
	Logger  *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			warmUp,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			context.Background,
		),
		logs.Module,
		scheduler.Module,
		notice.Module,
		telemetry.Module,
	)
}

func injectRepo() fx.Option {
	return remote.Module
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(qrcode.NewQRCodeServiceFromConfig),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewSelectionService,
			impl.NewOrderService,
			impl.NewHistoryService,
			impl.NewProfileService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewSelectionHandler,
			handler.NewOrderHandler,
			handler.NewHistoryHandler,
			handler.NewProfileHandler,
			handler.NewNoticeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// warmUp loads the catalog and picks up an unfinished order once the application has started.
func warmUp(params warmUpParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ctx := context.Background()
				params.Catalog.LoadAll(ctx)
				if _, err := params.History.LoadActiveOrder(ctx); err != nil {
					params.Logger.Warn("Failed to resume active order", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
