package constants

const (
	ErrCodeSignalwireError     = "SIGNALWIRE_ERROR"
	ErrCodeInvalidAccountSID   = "INVALID_ACCOUNT_SID"
	ErrCodeInvalidContactID    = "INVALID_CONTACT_ID"
	ErrCodeContactUnsubscribed = "CONTACT_UNSUBSCRIBED"
	ErrCodeContactResubscribed = "CONTACT_RESUBSCRIBED"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgSignalwireError     = "provider reported an error"
	ErrMsgInvalidAccountSID   = "Invalid AccountSid"
	ErrMsgInvalidContactID    = "Invalid Contact ID"
	ErrMsgContactUnsubscribed = "Contact Unsubscribed"
	ErrMsgContactResubscribed = "Contact Resubscribed"
	ErrMsgOrderNotFound       = "order not found"
	ErrMsgInternalError       = "Internal server error"
	ErrMsgInvalidRequestBody  = "failed to parse request body"
)

var errorMessages = map[string]string{
	ErrCodeSignalwireError:     ErrMsgSignalwireError,
	ErrCodeInvalidAccountSID:   ErrMsgInvalidAccountSID,
	ErrCodeInvalidContactID:    ErrMsgInvalidContactID,
	ErrCodeContactUnsubscribed: ErrMsgContactUnsubscribed,
	ErrCodeContactResubscribed: ErrMsgContactResubscribed,
	ErrCodeOrderNotFound:       ErrMsgOrderNotFound,
	ErrCodeInternalError:       ErrMsgInternalError,
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

// GetHTTPStatus keeps the legacy webhook contract: the STOP/START success
// paths report as 400-class responses, which the provider ignores either way.
func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeSignalwireError, ErrCodeInvalidAccountSID, ErrCodeInvalidContactID,
		ErrCodeContactUnsubscribed, ErrCodeContactResubscribed, ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeOrderNotFound:
		return 404
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
