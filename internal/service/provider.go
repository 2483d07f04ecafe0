package service

import (
	"context"
	"time"

	"github.com/wpwhiz/signalwire-woo/internal/config"
	"github.com/wpwhiz/signalwire-woo/pkg/signalwire"
	"go.uber.org/zap"
)

type ProviderService interface {
	SendWithRetry(ctx context.Context, toPhone, body string) (signalwire.Response, error)
}

// IsPermanentSendError reports whether a provider error can never succeed on
// retry: a bad destination, a rejected request or bad credentials.
func IsPermanentSendError(err error) bool {
	switch err.Error() {
	case signalwire.ErrorCodeInvalidNumber, signalwire.ErrorCodeInvalidRequest, signalwire.ErrorCodeUnauthorized:
		return true
	}
	return false
}

type Provider struct {
	sender signalwire.Sender
	logger *zap.Logger
	config signalwire.Config
}

func NewProviderService(sender signalwire.Sender, logger *zap.Logger, config *config.Config) ProviderService {
	return &Provider{sender: sender, logger: logger, config: config.SignalWire}
}

func (p *Provider) SendWithRetry(ctx context.Context, toPhone, body string) (signalwire.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= p.config.MaxRetry; attempt++ {
		p.logger.Debug("Attempting to send SMS",
			zap.Int("attempt", attempt),
			zap.String("to", toPhone))

		providerCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)

		response, err := p.sender.Send(providerCtx, toPhone, body)
		cancel()

		if err == nil {
			p.logger.Info("SMS sent successfully",
				zap.String("providerSid", response.Sid),
				zap.String("status", response.Status),
				zap.Int("attempt", attempt))
			return response, nil
		}

		lastErr = err
		p.logger.Warn("SMS send attempt failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.String("to", toPhone))

		if IsPermanentSendError(err) {
			p.logger.Error("Non-retryable error encountered",
				zap.Error(err),
				zap.String("to", toPhone))
			return signalwire.Response{}, err
		}

		if attempt < p.config.MaxRetry {
			delay := time.Duration(attempt) * 100 * time.Millisecond
			p.logger.Debug("Waiting before retry", zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return signalwire.Response{}, ctx.Err()
			}
		}
	}

	p.logger.Error("All retry attempts exhausted",
		zap.Error(lastErr),
		zap.Int("maxRetries", p.config.MaxRetry),
		zap.String("to", toPhone))

	return signalwire.Response{}, lastErr
}
