package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wpwhiz/signalwire-woo/internal/service"
)

type RedeliveryQueueService struct {
	mock.Mock
}

func (m *RedeliveryQueueService) FindDeliveriesToQueue(ctx context.Context, limit int) ([]service.DeliverCommand, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DeliverCommand), args.Error(1)
}

func (m *RedeliveryQueueService) MarkDeliveryQueued(ctx context.Context, deliveryID int64) error {
	args := m.Called(ctx, deliveryID)
	return args.Error(0)
}
