package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wpwhiz/signalwire-woo/internal/service"
)

type InboundService struct {
	mock.Mock
}

func (m *InboundService) HandleMessage(ctx context.Context, cmd service.InboundMessageCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
