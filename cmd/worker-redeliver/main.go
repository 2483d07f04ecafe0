package main

import (
	"context"

	"github.com/wpwhiz/signalwire-woo/internal/config"
	"github.com/wpwhiz/signalwire-woo/internal/consumers"
	"github.com/wpwhiz/signalwire-woo/internal/database"
	"github.com/wpwhiz/signalwire-woo/internal/repository"
	"github.com/wpwhiz/signalwire-woo/internal/service"
	"github.com/wpwhiz/signalwire-woo/pkg/httpclient"
	"github.com/wpwhiz/signalwire-woo/pkg/mq"
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
			NewMQConnection,
			NewMQConsumer,

			repository.NewDeliveryRepository,
			NewSignalWireSender,
			service.NewProviderService,
			service.NewDeliveryService,

			consumers.NewRedeliverConsumer,
		),
		fx.Invoke(runRedeliverConsumer),
	).Run()
}

func runRedeliverConsumer(cfg *config.Config, consumer consumers.RedeliverConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology(); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				if err := consumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("redeliver consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping redeliver consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewSignalWireSender(cfg *config.Config) signalwire.Sender {
	client := httpclient.NewHTTPClient(cfg.SignalWire.Timeout)
	return signalwire.NewClient(cfg.SignalWire, client)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}
