package v1

// InboundMessageRequest is the form-encoded webhook body SignalWire posts
// for a received SMS. Only the fields this service consumes are mapped.
type InboundMessageRequest struct {
	ErrorCode  string `form:"error_code"`
	AccountSid string `form:"AccountSid"`
	From       string `form:"From"`
	Body       string `form:"Body"`
}

type OrderStatusRequest struct {
	Status    string `json:"status"`
	ForceSend bool   `json:"force_send"`
}
