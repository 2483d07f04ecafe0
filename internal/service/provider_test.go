package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wpwhiz/signalwire-woo/internal/config"
	"github.com/wpwhiz/signalwire-woo/internal/service"
	"github.com/wpwhiz/signalwire-woo/pkg/mocks"
	"github.com/wpwhiz/signalwire-woo/pkg/signalwire"
	"go.uber.org/zap"
)

func providerTestConfig() *config.Config {
	return &config.Config{
		SignalWire: signalwire.Config{
			Timeout:  time.Second,
			MaxRetry: 3,
		},
	}
}

func TestProvider_SendWithRetry(t *testing.T) {
	logger := zap.NewNop()

	t.Run("first attempt succeeds", func(t *testing.T) {
		mockSender := &mocks.Sender{}
		svc := service.NewProviderService(mockSender, logger, providerTestConfig())

		mockSender.On("Send", mock.Anything, "+15551234567", "hello").
			Return(signalwire.Response{Sid: "SM123", Status: "queued"}, nil).Once()

		response, err := svc.SendWithRetry(context.Background(), "+15551234567", "hello")

		require.NoError(t, err)
		assert.Equal(t, "SM123", response.Sid)
		mockSender.AssertExpectations(t)
	})

	t.Run("retries transient failure then succeeds", func(t *testing.T) {
		mockSender := &mocks.Sender{}
		svc := service.NewProviderService(mockSender, logger, providerTestConfig())

		mockSender.On("Send", mock.Anything, "+15551234567", "hello").
			Return(signalwire.Response{}, errors.New(signalwire.ErrorCodeServerError)).Once()
		mockSender.On("Send", mock.Anything, "+15551234567", "hello").
			Return(signalwire.Response{Sid: "SM456"}, nil).Once()

		response, err := svc.SendWithRetry(context.Background(), "+15551234567", "hello")

		require.NoError(t, err)
		assert.Equal(t, "SM456", response.Sid)
		mockSender.AssertNumberOfCalls(t, "Send", 2)
	})

	t.Run("exhausts retries and returns last error", func(t *testing.T) {
		mockSender := &mocks.Sender{}
		svc := service.NewProviderService(mockSender, logger, providerTestConfig())

		sendErr := errors.New(signalwire.ErrorCodeNetworkError)
		mockSender.On("Send", mock.Anything, "+15551234567", "hello").
			Return(signalwire.Response{}, sendErr)

		_, err := svc.SendWithRetry(context.Background(), "+15551234567", "hello")

		assert.ErrorIs(t, err, sendErr)
		mockSender.AssertNumberOfCalls(t, "Send", 3)
	})

	t.Run("invalid number is not retried", func(t *testing.T) {
		mockSender := &mocks.Sender{}
		svc := service.NewProviderService(mockSender, logger, providerTestConfig())

		mockSender.On("Send", mock.Anything, "+15551234567", "hello").
			Return(signalwire.Response{}, errors.New(signalwire.ErrorCodeInvalidNumber))

		_, err := svc.SendWithRetry(context.Background(), "+15551234567", "hello")

		require.Error(t, err)
		assert.Equal(t, signalwire.ErrorCodeInvalidNumber, err.Error())
		mockSender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("bad credentials are not retried", func(t *testing.T) {
		mockSender := &mocks.Sender{}
		svc := service.NewProviderService(mockSender, logger, providerTestConfig())

		mockSender.On("Send", mock.Anything, "+15551234567", "hello").
			Return(signalwire.Response{}, errors.New(signalwire.ErrorCodeUnauthorized))

		_, err := svc.SendWithRetry(context.Background(), "+15551234567", "hello")

		require.Error(t, err)
		mockSender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("rejected request is not retried", func(t *testing.T) {
		mockSender := &mocks.Sender{}
		svc := service.NewProviderService(mockSender, logger, providerTestConfig())

		mockSender.On("Send", mock.Anything, "+15551234567", "").
			Return(signalwire.Response{}, errors.New(signalwire.ErrorCodeInvalidRequest))

		_, err := svc.SendWithRetry(context.Background(), "+15551234567", "")

		require.Error(t, err)
		mockSender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("cancelled context stops the retry loop", func(t *testing.T) {
		mockSender := &mocks.Sender{}
		svc := service.NewProviderService(mockSender, logger, providerTestConfig())

		ctx, cancel := context.WithCancel(context.Background())

		mockSender.On("Send", mock.Anything, "+15551234567", "hello").
			Return(signalwire.Response{}, errors.New(signalwire.ErrorCodeServerError)).
			Run(func(args mock.Arguments) { cancel() })

		_, err := svc.SendWithRetry(ctx, "+15551234567", "hello")

		assert.ErrorIs(t, err, context.Canceled)
		mockSender.AssertNumberOfCalls(t, "Send", 1)
	})
}
