package v1

type OrderStatusResponse struct {
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	DeliveryID int64  `json:"delivery_id,omitempty"`
}
