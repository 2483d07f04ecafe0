package signalwire

const (
	ErrorCodeServerError    = "SERVER_ERROR"    // For 5xx HTTP status
	ErrorCodeTimeout        = "TIMEOUT"         // For context timeout
	ErrorCodeInvalidNumber  = "INVALID_NUMBER"  // For 400/validation errors on the destination
	ErrorCodeInvalidRequest = "INVALID_REQUEST" // For rejected request parameters (empty body)
	ErrorCodeUnauthorized   = "UNAUTHORIZED"    // For 401/403 credential failures
	ErrorCodeNetworkError   = "NETWORK_ERROR"   // For connection failures
)
