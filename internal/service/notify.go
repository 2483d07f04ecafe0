package service

import (
	"context"
	"errors"
	"time"

	"github.com/wpwhiz/signalwire-woo/internal/config"
	"github.com/wpwhiz/signalwire-woo/internal/constants"
	"github.com/wpwhiz/signalwire-woo/internal/model"
	"github.com/wpwhiz/signalwire-woo/internal/repository"
	"go.uber.org/zap"
)

const (
	SkipReasonNoPhone       = "no_billing_phone"
	SkipReasonNotSubscribed = "not_subscribed"
)

// NotifyService turns an order status transition into an outbound SMS. A
// failed send is recorded on the outbox row and never surfaces to the order
// event that triggered it.
type NotifyService interface {
	OrderStatusChanged(ctx context.Context, cmd OrderStatusChangedCommand) (NotifyResult, error)
}

type notify struct {
	orders     repository.OrderRepository
	contacts   repository.ContactRepository
	deliveries repository.DeliveryRepository
	delivery   DeliveryService
	siteName   string
	logger     *zap.Logger
}

func NewNotifyService(orders repository.OrderRepository, contacts repository.ContactRepository,
	deliveries repository.DeliveryRepository, delivery DeliveryService, cfg *config.Config,
	logger *zap.Logger) NotifyService {
	return &notify{
		orders:     orders,
		contacts:   contacts,
		deliveries: deliveries,
		delivery:   delivery,
		siteName:   cfg.Site.Name,
		logger:     logger,
	}
}

func (n *notify) OrderStatusChanged(ctx context.Context, cmd OrderStatusChangedCommand) (NotifyResult, error) {
	order, err := n.orders.GetByID(cmd.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return NotifyResult{}, NewServiceError(constants.ErrCodeOrderNotFound, err)
		}

		return NotifyResult{}, err
	}

	status := cmd.Status
	if status == "" {
		status = order.Status
	}

	if order.BillingPhone == "" {
		n.logger.Debug("Order has no billing phone, skipping notification",
			zap.Int64("orderID", cmd.OrderID))
		return NotifyResult{Skipped: true, SkipReason: SkipReasonNoPhone}, nil
	}

	contact, err := n.contacts.FindByPhone(StripUS(order.BillingPhone))
	if err != nil && !errors.Is(err, repository.ErrContactNotFound) {
		return NotifyResult{}, err
	}

	var contactID *int64
	subscribed := false
	if contact != nil {
		contactID = &contact.ID
		subscribed = contact.SMSOrderNotifications
	}

	if !subscribed && !cmd.ForceSend {
		n.logger.Debug("Contact not subscribed, skipping notification",
			zap.Int64("orderID", cmd.OrderID),
			zap.String("status", string(status)))
		return NotifyResult{Skipped: true, SkipReason: SkipReasonNotSubscribed}, nil
	}

	orderID := cmd.OrderID
	now := time.Now()
	d := model.Delivery{
		Kind:      model.DeliveryKindOrderUpdate,
		ContactID: contactID,
		OrderID:   &orderID,
		ToPhone:   NormalizeUS(order.BillingPhone),
		Body:      ComposeOrderMessage(n.siteName, cmd.OrderID, status),
		Status:    model.DeliveryStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.deliveries.Create(ctx, &d); err != nil {
		n.logger.Error("Failed to record delivery",
			zap.Int64("orderID", cmd.OrderID),
			zap.Error(err))
		return NotifyResult{}, err
	}

	deliverCmd := DeliverCommand{DeliveryID: d.ID, ToPhone: d.ToPhone, Body: d.Body}
	if err := n.delivery.Deliver(ctx, deliverCmd); err != nil {
		// Order processing must not fail because SMS delivery failed; the
		// row stays FAILED_TEMP and the redelivery publisher picks it up.
		n.logger.Warn("Order notification delivery failed, left for redelivery",
			zap.Int64("orderID", cmd.OrderID),
			zap.Int64("deliveryID", d.ID),
			zap.Error(err))
	}

	return NotifyResult{DeliveryID: d.ID}, nil
}
