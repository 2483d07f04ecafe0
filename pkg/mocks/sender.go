package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wpwhiz/signalwire-woo/pkg/signalwire"
)

type Sender struct {
	mock.Mock
}

func (s *Sender) Send(ctx context.Context, toPhone, body string) (signalwire.Response, error) {
	args := s.Called(ctx, toPhone, body)
	return args.Get(0).(signalwire.Response), args.Error(1)
}
