package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wpwhiz/signalwire-woo/pkg/signalwire"
)

type ProviderService struct {
	mock.Mock
}

func (p *ProviderService) SendWithRetry(ctx context.Context, toPhone, body string) (signalwire.Response, error) {
	args := p.Called(ctx, toPhone, body)
	return args.Get(0).(signalwire.Response), args.Error(1)
}
