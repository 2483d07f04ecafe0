package mq

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Handle func(ctx context.Context, body []byte) error

type Consumer interface {
	Consume(ctx context.Context, prefetch int, queue string, handler Handle) error
}

type RabbitConsumer struct {
	ch     *amqp.Channel
	logger *zap.Logger
}

func NewRabbitConsumer(ch *amqp.Channel, logger *zap.Logger) Consumer {
	return &RabbitConsumer{ch: ch, logger: logger}
}

// Consume delivers messages from queue to handler one at a time. A handler
// error wrapped as Temporary nacks with requeue; any other error drops the
// message.
func (c *RabbitConsumer) Consume(ctx context.Context, prefetch int, queue string, handler Handle) error {
	if prefetch <= 0 {
		prefetch = 1
	}

	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return err
	}

	tag := queue + ".consumer"
	deliveries, err := c.ch.Consume(queue, tag, false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			if err := c.ch.Cancel(tag, false); err != nil {
				c.logger.Warn("Failed to cancel consumer",
					zap.Error(err),
					zap.String("tag", tag))
			}
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			if err := handler(ctx, d.Body); err != nil {
				requeue := shouldRequeue(err)
				c.logger.Warn("Message handling failed",
					zap.Error(err),
					zap.String("queue", queue),
					zap.Bool("requeue", requeue))
				_ = d.Nack(false, requeue)
				continue
			}

			_ = d.Ack(false)
		}
	}
}

func shouldRequeue(err error) bool {
	var te TempError
	return errors.As(err, &te) && te.Temporary()
}
