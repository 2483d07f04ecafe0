package model

import "time"

// Contact mirrors the store customer record this service reads. The
// subscription flag is the single source of truth for whether order-status
// SMS go out; only an inbound STOP/START from the contact's own number or an
// explicit account-form action flips it.
type Contact struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Email                 string    `gorm:"column:email"`
	BillingPhone          string    `gorm:"column:billing_phone;index"`
	SMSOrderNotifications bool      `gorm:"column:sms_order_notifications;default:false;not null"`
	CreatedAt             time.Time `gorm:"column:created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`
}
