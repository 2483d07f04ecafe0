package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/wpwhiz/signalwire-woo/internal/api"
	v1 "github.com/wpwhiz/signalwire-woo/internal/api/v1"
	"github.com/wpwhiz/signalwire-woo/internal/config"
	"github.com/wpwhiz/signalwire-woo/internal/database"
	"github.com/wpwhiz/signalwire-woo/internal/repository"
	"github.com/wpwhiz/signalwire-woo/internal/service"
	"github.com/wpwhiz/signalwire-woo/pkg/httpclient"
	"github.com/wpwhiz/signalwire-woo/pkg/signalwire"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,

			repository.NewContactRepository,
			repository.NewOrderRepository,
			repository.NewDeliveryRepository,
			repository.NewTransactionManager,

			NewSignalWireSender,
			service.NewProviderService,
			service.NewDeliveryService,
			service.NewNotifyService,
			service.NewInboundService,

			v1.NewHandler,
			api.NewApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting API server", zap.String("port", cfg.API.Port))
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewSignalWireSender(cfg *config.Config) signalwire.Sender {
	client := httpclient.NewHTTPClient(cfg.SignalWire.Timeout)
	return signalwire.NewClient(cfg.SignalWire, client)
}
