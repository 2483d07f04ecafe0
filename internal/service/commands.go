package service

import "github.com/wpwhiz/signalwire-woo/internal/model"

type OrderStatusChangedCommand struct {
	OrderID int64
	Status  model.OrderStatus
	// ForceSend carries the checkout-form opt-in that may not have reached the
	// contact record yet when the first order event fires.
	ForceSend bool
}

type NotifyResult struct {
	DeliveryID int64
	Skipped    bool
	SkipReason string
}

type InboundMessageCommand struct {
	AccountSID string
	From       string
	Body       string
	ErrorCode  string
}

// DeliverCommand is the redelivery queue payload.
type DeliverCommand struct {
	DeliveryID int64  `json:"delivery_id"`
	ToPhone    string `json:"to_phone"`
	Body       string `json:"body"`
}

type UpdateDeliveryToSendingCommand struct {
	DeliveryID   int64
	AttemptCount int
}

type UpdateDeliverySuccessCommand struct {
	DeliveryID  int64
	ProviderSID string
}

type UpdateDeliveryFailureCommand struct {
	DeliveryID int64
	LastError  string
}
