package model

import "time"

type DeliveryStatus string

const (
	DeliveryStatusCreated    DeliveryStatus = "CREATED"
	DeliveryStatusSending    DeliveryStatus = "SENDING"
	DeliveryStatusSubmitted  DeliveryStatus = "SUBMITTED"
	DeliveryStatusFailedTemp DeliveryStatus = "FAILED_TEMP"
	DeliveryStatusFailedPerm DeliveryStatus = "FAILED_PERM"
)

type DeliveryKind string

const (
	DeliveryKindOrderUpdate DeliveryKind = "ORDER_UPDATE"
	DeliveryKindOptOutAck   DeliveryKind = "OPT_OUT_ACK"
	DeliveryKindOptInAck    DeliveryKind = "OPT_IN_ACK"
)

// Delivery is the outbox row for one outbound SMS. Published/PublishedAt track
// whether a failed row has been handed to the redelivery queue.
type Delivery struct {
	ID            int64          `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Kind          DeliveryKind   `gorm:"column:kind;<-:create"`
	ContactID     *int64         `gorm:"column:contact_id"`
	OrderID       *int64         `gorm:"column:order_id"`
	ToPhone       string         `gorm:"column:to_phone"`
	Body          string         `gorm:"column:body"`
	Status        DeliveryStatus `gorm:"column:status"`
	AttemptCount  int            `gorm:"column:attempt_count"`
	LastAttemptAt *time.Time     `gorm:"column:last_attempt_at"`
	ProviderSID   *string        `gorm:"column:provider_sid"`
	LastError     *string        `gorm:"column:last_error;type:text"`
	Published     bool           `gorm:"column:published;default:false;not null"`
	PublishedAt   *time.Time     `gorm:"column:published_at"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}
