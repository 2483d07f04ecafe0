package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/wpwhiz/signalwire-woo/internal/config"
	"github.com/wpwhiz/signalwire-woo/internal/constants"
	"github.com/wpwhiz/signalwire-woo/internal/model"
	"github.com/wpwhiz/signalwire-woo/internal/repository"
	"go.uber.org/zap"
)

// InboundService interprets SMS replies received on the provider webhook.
// Only STOP/START style keywords from a known contact's own number mutate
// the subscription flag; everything else is ignored.
type InboundService interface {
	HandleMessage(ctx context.Context, cmd InboundMessageCommand) error
}

type inbound struct {
	contacts   repository.ContactRepository
	deliveries repository.DeliveryRepository
	delivery   DeliveryService
	txManager  repository.TxManager
	accountSID string
	siteName   string
	logger     *zap.Logger
}

func NewInboundService(contacts repository.ContactRepository, deliveries repository.DeliveryRepository,
	delivery DeliveryService, txManager repository.TxManager, cfg *config.Config,
	logger *zap.Logger) InboundService {
	return &inbound{
		contacts:   contacts,
		deliveries: deliveries,
		delivery:   delivery,
		txManager:  txManager,
		accountSID: cfg.SignalWire.AccountSID,
		siteName:   cfg.Site.Name,
		logger:     logger,
	}
}

func (s *inbound) HandleMessage(ctx context.Context, cmd InboundMessageCommand) error {
	if cmd.ErrorCode != "" {
		s.logger.Warn("Provider reported an error on inbound message",
			zap.String("errorCode", cmd.ErrorCode))
		return NewServiceError(constants.ErrCodeSignalwireError, errors.New(cmd.ErrorCode))
	}

	if cmd.AccountSID != s.accountSID {
		s.logger.Warn("Inbound message with mismatched account sid",
			zap.String("accountSid", cmd.AccountSID))
		return NewServiceError(constants.ErrCodeInvalidAccountSID, errors.New("invalid account sid"))
	}

	contact, err := s.contacts.FindByPhone(StripUS(cmd.From))
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			// Unknown senders cannot mutate subscription state.
			s.logger.Warn("Inbound message from unknown phone number",
				zap.String("from", cmd.From))
			return NewServiceError(constants.ErrCodeInvalidContactID, err)
		}

		return err
	}

	keyword := strings.ToLower(strings.TrimSpace(cmd.Body))

	switch keyword {
	case "stop", "unsubscribe":
		if err := s.setSubscription(ctx, contact, false); err != nil {
			return err
		}

		s.logger.Info("Contact unsubscribed from order notifications",
			zap.Int64("contactID", contact.ID))

		return NewServiceError(constants.ErrCodeContactUnsubscribed, ErrContactUnsubscribed)

	case "start", "subscribe":
		if err := s.setSubscription(ctx, contact, true); err != nil {
			return err
		}

		s.logger.Info("Contact resubscribed to order notifications",
			zap.Int64("contactID", contact.ID))

		return NewServiceError(constants.ErrCodeContactResubscribed, ErrContactResubscribed)

	default:
		s.logger.Debug("Ignoring unrecognized inbound keyword",
			zap.Int64("contactID", contact.ID))
		return nil
	}
}

// setSubscription flips the flag and records the acknowledgment SMS in one
// transaction, then attempts the ack send after commit. A failed ack is left
// on the outbox for redelivery.
func (s *inbound) setSubscription(ctx context.Context, contact *model.Contact, subscribed bool) error {
	kind := model.DeliveryKindOptOutAck
	ack := ComposeOptOutAck(s.siteName)
	if subscribed {
		kind = model.DeliveryKindOptInAck
		ack = ComposeOptInAck(s.siteName)
	}

	now := time.Now()
	d := model.Delivery{
		Kind:      kind,
		ContactID: &contact.ID,
		ToPhone:   NormalizeUS(contact.BillingPhone),
		Body:      ack,
		Status:    model.DeliveryStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.contacts.SetSubscription(ctx, contact.ID, subscribed); err != nil {
			s.logger.Error("Failed to update subscription flag",
				zap.Int64("contactID", contact.ID),
				zap.Error(err))
			return err
		}

		if err := s.deliveries.Create(ctx, &d); err != nil {
			s.logger.Error("Failed to record acknowledgment delivery",
				zap.Int64("contactID", contact.ID),
				zap.Error(err))
			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	deliverCmd := DeliverCommand{DeliveryID: d.ID, ToPhone: d.ToPhone, Body: d.Body}
	if err := s.delivery.Deliver(ctx, deliverCmd); err != nil {
		s.logger.Warn("Acknowledgment delivery failed, left for redelivery",
			zap.Int64("contactID", contact.ID),
			zap.Int64("deliveryID", d.ID),
			zap.Error(err))
	}

	return nil
}
