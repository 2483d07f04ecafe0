package service

import (
	"fmt"

	"github.com/wpwhiz/signalwire-woo/internal/model"
)

var statusMessages = map[model.OrderStatus]string{
	model.OrderStatusPending:    "Your order is being processed.",
	model.OrderStatusProcessing: "Your order is being prepared for shipment.",
	model.OrderStatusOnHold:     "Your order has been placed on hold.",
	model.OrderStatusCompleted:  "Your order has been shipped.",
	model.OrderStatusCancelled:  "Your order has been cancelled.",
	model.OrderStatusRefunded:   "Your order has been refunded.",
	model.OrderStatusFailed:     "Your order has failed.",
}

const fallbackStatusMessage = "Your order status has changed."

const optOutSuffix = " To opt out, reply STOP. For help, reply HELP."

// ComposeOrderMessage builds the order-update text. The opt-out instructions
// ride along only on the first statuses a customer sees (pending, processing).
func ComposeOrderMessage(siteName string, orderID int64, status model.OrderStatus) string {
	message, ok := statusMessages[status]
	if !ok {
		message = fallbackStatusMessage
	}

	suffix := ""
	if status == model.OrderStatusPending || status == model.OrderStatusProcessing {
		suffix = optOutSuffix
	}

	return fmt.Sprintf("%s - Order #%d update: %s%s", siteName, orderID, message, suffix)
}

func ComposeOptOutAck(siteName string) string {
	return fmt.Sprintf("You have opted out from %s order notifications.", siteName)
}

func ComposeOptInAck(siteName string) string {
	return fmt.Sprintf("Thank you for signing up to %s Order Notifications! Reply STOP to unsubscribe. Reply HELP for help.", siteName)
}
