package service

import (
	"context"
	"time"

	"github.com/wpwhiz/signalwire-woo/internal/model"
	"github.com/wpwhiz/signalwire-woo/internal/repository"
	"go.uber.org/zap"
)

// RedeliveryQueueService feeds the outbox publisher: failed deliveries not
// yet handed to the queue, and the published-flag bookkeeping.
type RedeliveryQueueService interface {
	FindDeliveriesToQueue(ctx context.Context, limit int) ([]DeliverCommand, error)
	MarkDeliveryQueued(ctx context.Context, deliveryID int64) error
}

type redeliveryQueue struct {
	deliveries repository.DeliveryRepository
	logger     *zap.Logger
}

func NewRedeliveryQueueService(deliveries repository.DeliveryRepository, logger *zap.Logger) RedeliveryQueueService {
	return &redeliveryQueue{deliveries: deliveries, logger: logger}
}

func (q *redeliveryQueue) FindDeliveriesToQueue(ctx context.Context, limit int) ([]DeliverCommand, error) {
	q.logger.Debug("Finding failed deliveries to publish", zap.Int("batchSize", limit))

	failed, err := q.deliveries.FindUnpublishedFailed(limit)
	if err != nil {
		q.logger.Error("Failed to find unpublished deliveries", zap.Error(err))
		return nil, err
	}

	if len(failed) == 0 {
		q.logger.Debug("No deliveries found to publish")
		return nil, nil
	}

	commands := make([]DeliverCommand, 0, len(failed))
	for _, d := range failed {
		commands = append(commands, DeliverCommand{
			DeliveryID: d.ID,
			ToPhone:    d.ToPhone,
			Body:       d.Body,
		})
	}

	return commands, nil
}

func (q *redeliveryQueue) MarkDeliveryQueued(ctx context.Context, deliveryID int64) error {
	publishedAt := time.Now()
	d := model.Delivery{
		ID:          deliveryID,
		Published:   true,
		PublishedAt: &publishedAt,
		UpdatedAt:   time.Now(),
	}

	if err := q.deliveries.Update(ctx, &d); err != nil {
		q.logger.Error("Failed to mark delivery as published",
			zap.Error(err),
			zap.Int64("deliveryID", deliveryID))
		return err
	}

	q.logger.Debug("Successfully marked delivery as published",
		zap.Int64("deliveryID", deliveryID))

	return nil
}
