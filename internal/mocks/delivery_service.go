package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wpwhiz/signalwire-woo/internal/service"
)

type DeliveryService struct {
	mock.Mock
}

func (m *DeliveryService) Deliver(ctx context.Context, cmd service.DeliverCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
