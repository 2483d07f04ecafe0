package publishers

import (
	"context"
	"encoding/json"

	"github.com/wpwhiz/signalwire-woo/internal/config"
	"github.com/wpwhiz/signalwire-woo/internal/consumers"
	"github.com/wpwhiz/signalwire-woo/internal/service"
	"github.com/wpwhiz/signalwire-woo/pkg/mq"
	"go.uber.org/zap"
)

const defaultBatchSize = 100

type RedeliverPublisher interface {
	Publish(ctx context.Context) error
}

type redeliverPublisher struct {
	service   service.RedeliveryQueueService
	publisher mq.Publisher
	batchSize int
	logger    *zap.Logger
}

func NewRedeliverPublisher(service service.RedeliveryQueueService, publisher mq.Publisher,
	cfg *config.Config, logger *zap.Logger) RedeliverPublisher {
	batchSize := cfg.Redeliver.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &redeliverPublisher{service: service, publisher: publisher, batchSize: batchSize, logger: logger}
}

func (s *redeliverPublisher) Publish(ctx context.Context) error {
	deliveries, err := s.service.FindDeliveriesToQueue(ctx, s.batchSize)
	if err != nil {
		return err
	}

	if len(deliveries) == 0 {
		return nil
	}

	s.logger.Info("Publishing failed deliveries", zap.Int("count", len(deliveries)))

	successCount := 0
	for _, d := range deliveries {
		body, err := json.Marshal(d)
		if err != nil {
			s.logger.Error("Failed to encode delivery command",
				zap.Error(err),
				zap.Int64("deliveryID", d.DeliveryID))
			continue
		}

		if err := s.publisher.Publish(ctx, "", consumers.RedeliverQueue, body); err != nil {
			s.logger.Error("Failed to publish delivery",
				zap.Error(err),
				zap.Int64("deliveryID", d.DeliveryID))
			continue
		}

		if err := s.service.MarkDeliveryQueued(ctx, d.DeliveryID); err != nil {
			continue
		}

		successCount++
	}

	if successCount > 0 {
		s.logger.Info("Successfully published deliveries for redelivery",
			zap.Int("published", successCount),
			zap.Int("total", len(deliveries)))
	}

	return nil
}
