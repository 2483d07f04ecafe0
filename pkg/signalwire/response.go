package signalwire

type Response struct {
	Sid          string  `json:"sid"`
	Status       string  `json:"status"`
	To           string  `json:"to"`
	From         string  `json:"from"`
	ErrorCode    *string `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
}
