package service

import (
	"context"
	"errors"
	"time"

	"github.com/wpwhiz/signalwire-woo/internal/model"
	"github.com/wpwhiz/signalwire-woo/internal/repository"
	"github.com/wpwhiz/signalwire-woo/pkg/mq"
	"go.uber.org/zap"
)

const maxAttempts = 3

// A SENDING row older than this is considered abandoned and may be reclaimed.
const staleSendingAfter = 5 * time.Minute

// DeliveryService runs one send attempt for an outbox row: claim, send,
// record the outcome. Both the synchronous first attempt and the redelivery
// consumer go through here.
type DeliveryService interface {
	Deliver(ctx context.Context, cmd DeliverCommand) error
}

type delivery struct {
	deliveries repository.DeliveryRepository
	provider   ProviderService
	logger     *zap.Logger
}

func NewDeliveryService(deliveries repository.DeliveryRepository, provider ProviderService,
	logger *zap.Logger) DeliveryService {
	return &delivery{deliveries: deliveries, provider: provider, logger: logger}
}

func (s *delivery) Deliver(ctx context.Context, cmd DeliverCommand) error {
	d, err := s.getDeliveryForProcessing(cmd.DeliveryID)
	if err != nil {
		s.logger.Debug("Delivery not processable",
			zap.Int64("deliveryID", cmd.DeliveryID),
			zap.Error(err))

		if errors.Is(err, ErrDatabase) {
			return mq.Temporary(err)
		}

		return nil
	}

	attemptCount := d.AttemptCount
	if d.Status != model.DeliveryStatusSending {
		attemptCount += 1
	}

	if attemptCount > maxAttempts {
		s.logger.Warn("Delivery exceeded max attempts",
			zap.Int64("deliveryID", cmd.DeliveryID),
			zap.Int("attempts", attemptCount))

		failCmd := UpdateDeliveryFailureCommand{DeliveryID: cmd.DeliveryID, LastError: "exceeded max attempts"}
		if err := s.updateToPermanentFailure(ctx, failCmd); err != nil {
			return mq.Temporary(err)
		}

		return nil
	}

	sendingCmd := UpdateDeliveryToSendingCommand{DeliveryID: cmd.DeliveryID, AttemptCount: attemptCount}
	if err := s.updateToSending(ctx, sendingCmd); err != nil {
		if errors.Is(err, ErrDeliveryBeingProcessed) {
			return nil
		}

		s.logger.Debug("Failed to update delivery to SENDING status",
			zap.Int64("deliveryID", cmd.DeliveryID),
			zap.Error(err))
		return mq.Temporary(err)
	}

	s.logger.Debug("Attempting delivery",
		zap.Int64("deliveryID", cmd.DeliveryID),
		zap.Int("attempt", attemptCount),
		zap.Int("maxAttempts", maxAttempts),
		zap.String("to", d.ToPhone))

	response, lastErr := s.provider.SendWithRetry(ctx, d.ToPhone, d.Body)
	if lastErr == nil {
		s.logger.Info("Delivery submitted to provider",
			zap.Int64("deliveryID", cmd.DeliveryID),
			zap.String("providerSid", response.Sid),
			zap.Int("attempt", attemptCount))

		successCmd := UpdateDeliverySuccessCommand{DeliveryID: cmd.DeliveryID, ProviderSID: response.Sid}
		return s.updateSucceeded(ctx, successCmd)
	}

	s.logger.Debug("Provider call failed",
		zap.Error(lastErr),
		zap.Int64("deliveryID", cmd.DeliveryID),
		zap.Int("attempt", attemptCount))

	if IsPermanentSendError(lastErr) {
		s.logger.Warn("Permanent delivery failure",
			zap.Int64("deliveryID", cmd.DeliveryID),
			zap.String("reason", lastErr.Error()))

		failCmd := UpdateDeliveryFailureCommand{DeliveryID: cmd.DeliveryID, LastError: lastErr.Error()}
		if err := s.updateToPermanentFailure(ctx, failCmd); err != nil {
			return mq.Temporary(err)
		}

		return nil
	}

	s.logger.Debug("Temporary delivery failure",
		zap.Int64("deliveryID", cmd.DeliveryID),
		zap.Int("attempt", attemptCount),
		zap.Int("remainingAttempts", maxAttempts-attemptCount),
		zap.Error(lastErr))

	failCmd := UpdateDeliveryFailureCommand{DeliveryID: cmd.DeliveryID, LastError: lastErr.Error()}
	if err := s.updateToTemporaryFailure(ctx, failCmd); err != nil {
		return mq.Temporary(err)
	}

	return mq.Temporary(lastErr)
}

func (s *delivery) getDeliveryForProcessing(deliveryID int64) (*model.Delivery, error) {
	d, err := s.deliveries.GetByID(deliveryID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, ErrDeliveryNotFound
		}

		return nil, ErrDatabase
	}

	switch d.Status {
	case model.DeliveryStatusCreated:
		return d, nil

	case model.DeliveryStatusSending:
		if d.LastAttemptAt != nil && time.Since(*d.LastAttemptAt) < staleSendingAfter {
			s.logger.Warn("Delivery being processed by another sender",
				zap.Int64("deliveryID", deliveryID),
				zap.Time("lastAttempt", *d.LastAttemptAt))
			return nil, ErrDeliveryBeingProcessed
		}

		return d, nil

	case model.DeliveryStatusSubmitted, model.DeliveryStatusFailedPerm:
		s.logger.Info("Delivery already processed",
			zap.Int64("deliveryID", deliveryID), zap.String("status", string(d.Status)))
		return nil, ErrDeliveryAlreadyProcessed

	case model.DeliveryStatusFailedTemp:
		s.logger.Info("Delivery previously failed, retrying", zap.Int64("deliveryID", deliveryID))
		return d, nil

	default:
		s.logger.Error("Unknown delivery status",
			zap.String("status", string(d.Status)),
			zap.Int64("deliveryID", deliveryID))
		return nil, ErrUnknownDeliveryStatus
	}
}

func (s *delivery) updateToSending(ctx context.Context, cmd UpdateDeliveryToSendingCommand) error {
	staleThreshold := time.Now().Add(-staleSendingAfter)

	attempt := time.Now()
	d := model.Delivery{
		ID:            cmd.DeliveryID,
		Status:        model.DeliveryStatusSending,
		AttemptCount:  cmd.AttemptCount,
		LastAttemptAt: &attempt,
		UpdatedAt:     time.Now(),
	}

	err := s.deliveries.UpdateForSending(ctx, &d, staleThreshold)
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNoRowsAffected) {
		s.logger.Info("Delivery not updated to SENDING, possibly claimed by another sender",
			zap.Int64("deliveryID", cmd.DeliveryID))

		return ErrDeliveryBeingProcessed
	}

	s.logger.Error("Failed to update delivery for send attempt",
		zap.Error(err),
		zap.Int64("deliveryID", cmd.DeliveryID))

	return ErrDatabase
}

func (s *delivery) updateSucceeded(ctx context.Context, cmd UpdateDeliverySuccessCommand) error {
	d := model.Delivery{
		ID:          cmd.DeliveryID,
		Status:      model.DeliveryStatusSubmitted,
		ProviderSID: &cmd.ProviderSID,
		UpdatedAt:   time.Now(),
	}

	if err := s.deliveries.Update(ctx, &d); err != nil {
		s.logger.Error("Failed to update delivery after successful send",
			zap.Int64("deliveryID", cmd.DeliveryID),
			zap.String("providerSid", cmd.ProviderSID),
			zap.Error(err))
	}

	return nil
}

func (s *delivery) updateToPermanentFailure(ctx context.Context, cmd UpdateDeliveryFailureCommand) error {
	d := model.Delivery{
		ID:        cmd.DeliveryID,
		Status:    model.DeliveryStatusFailedPerm,
		LastError: &cmd.LastError,
		UpdatedAt: time.Now(),
	}

	if err := s.deliveries.Update(ctx, &d); err != nil {
		s.logger.Error("Failed to update delivery after permanent failure",
			zap.Int64("deliveryID", cmd.DeliveryID),
			zap.Error(err))
		return err
	}

	return nil
}

func (s *delivery) updateToTemporaryFailure(ctx context.Context, cmd UpdateDeliveryFailureCommand) error {
	d := model.Delivery{
		ID:        cmd.DeliveryID,
		Status:    model.DeliveryStatusFailedTemp,
		LastError: &cmd.LastError,
		UpdatedAt: time.Now(),
	}

	if err := s.deliveries.Update(ctx, &d); err != nil {
		s.logger.Error("Failed to update delivery after temporary failure",
			zap.Int64("deliveryID", cmd.DeliveryID),
			zap.Error(err))
		return err
	}

	return nil
}
