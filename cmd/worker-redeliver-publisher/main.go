package main

import (
	"context"
	"time"

	"github.com/wpwhiz/signalwire-woo/internal/config"
	"github.com/wpwhiz/signalwire-woo/internal/database"
	"github.com/wpwhiz/signalwire-woo/internal/publishers"
	"github.com/wpwhiz/signalwire-woo/internal/repository"
	"github.com/wpwhiz/signalwire-woo/internal/service"
	"github.com/wpwhiz/signalwire-woo/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const defaultPublishInterval = 30 * time.Second

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewMQConnection,
			NewMQPublisher,

			repository.NewDeliveryRepository,

			service.NewRedeliveryQueueService,

			publishers.NewRedeliverPublisher,
		),
		fx.Invoke(runRedeliverPublisher),
	).Run()
}

func runRedeliverPublisher(cfg *config.Config, publisher publishers.RedeliverPublisher, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	interval := cfg.Redeliver.Interval
	if interval <= 0 {
		interval = defaultPublishInterval
	}

	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology(); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						if err := publisher.Publish(appCtx); err != nil {
							logger.Error("failed to publish deliveries", zap.Error(err))
						}
					case <-appCtx.Done():
						logger.Info("publisher context cancelled")
						return
					}
				}
			}()

			logger.Info("redeliver publisher started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping redeliver publisher")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}
