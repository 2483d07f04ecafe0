package consumers

import (
	"context"
	"encoding/json"

	"github.com/wpwhiz/signalwire-woo/internal/service"
	"github.com/wpwhiz/signalwire-woo/pkg/mq"
	"go.uber.org/zap"
)

const RedeliverQueue = "sms.redeliver"

type RedeliverConsumer interface {
	Consume(ctx context.Context) error
}

type redeliverConsumer struct {
	service  service.DeliveryService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewRedeliverConsumer(service service.DeliveryService, consumer mq.Consumer, logger *zap.Logger) RedeliverConsumer {
	return &redeliverConsumer{
		service:  service,
		consumer: consumer,
		logger:   logger,
	}
}

func (s *redeliverConsumer) Consume(ctx context.Context) error {
	return s.consumer.Consume(ctx, 1, RedeliverQueue, s.handleMessage)
}

func (s *redeliverConsumer) handleMessage(ctx context.Context, body []byte) error {
	s.logger.Info("received redeliver command", zap.ByteString("body", body))

	var cmd service.DeliverCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		s.logger.Warn("invalid redeliver command", zap.Error(err))
		return err
	}

	return s.service.Deliver(ctx, cmd)
}
