package service

import "errors"

var (
	ErrDeliveryNotFound         = errors.New("DELIVERY_NOT_FOUND")
	ErrDeliveryBeingProcessed   = errors.New("DELIVERY_BEING_PROCESSED")
	ErrDeliveryAlreadyProcessed = errors.New("DELIVERY_ALREADY_PROCESSED")
	ErrUnknownDeliveryStatus    = errors.New("UNKNOWN_DELIVERY_STATUS")
	ErrDatabase                 = errors.New("DATABASE_ERROR")

	ErrContactUnsubscribed = errors.New("contact unsubscribed")
	ErrContactResubscribed = errors.New("contact resubscribed")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
