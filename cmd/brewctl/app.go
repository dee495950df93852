package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"brew/config"
	"brew/internal/domain/lifecycle"
	"brew/internal/domain/service"
	logs "brew/internal/infra/log"
	"brew/internal/infra/notice"
	"brew/internal/infra/pubsub"
	"brew/internal/infra/qrcode"
	"brew/internal/infra/remote"
	"brew/internal/infra/scheduler"
	"brew/internal/infra/telemetry"
	"brew/internal/usecase"
	"brew/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// client is the ordering core as seen from the terminal.
type client struct {
	Catalog   usecase.CatalogUsecase
	Selection usecase.SelectionUsecase
	Order     usecase.OrderUsecase
	History   usecase.HistoryUsecase
	Profile   usecase.ProfileUsecase
	QRCode    service.QRCodeService
	Notifier  service.Notifier
	Logger    *slog.Logger

	out        io.Writer
	lastNotice uint64
}

// withClient builds the same graph as the kiosk minus the HTTP delivery, runs fn and stops
// the graph again.
func withClient(ctx context.Context, fn func(ctx context.Context, c *client) error) error {
	c := &client{out: os.Stdout}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.NewCLI,
			func() context.Context { return ctx },
			qrcode.NewQRCodeServiceFromConfig,
			impl.NewCatalogService,
			impl.NewSelectionService,
			impl.NewOrderService,
			impl.NewHistoryService,
			impl.NewProfileService,
		),
		scheduler.Module,
		notice.Module,
		telemetry.Module,
		pubsub.Module,
		remote.Module,
		fx.Populate(
			&c.Catalog,
			&c.Selection,
			&c.Order,
			&c.History,
			&c.Profile,
			&c.QRCode,
			&c.Notifier,
			&c.Logger,
		),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build client")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start client")
	}

	runErr := fn(ctx, c)
	c.flushNotices()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop client")
	}

	return runErr
}
