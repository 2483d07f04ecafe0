package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wpwhiz/signalwire-woo/internal/service"
)

type NotifyService struct {
	mock.Mock
}

func (m *NotifyService) OrderStatusChanged(ctx context.Context, cmd service.OrderStatusChangedCommand) (service.NotifyResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.NotifyResult), args.Error(1)
}
