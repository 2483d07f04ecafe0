package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
)

// Order is a read-only input to this service; status transitions happen in
// the commerce system that owns the record.
type Order struct {
	ID           int64       `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Status       OrderStatus `gorm:"column:status"`
	BillingPhone string      `gorm:"column:billing_phone"`
	CreatedAt    time.Time   `gorm:"column:created_at"`
	UpdatedAt    time.Time   `gorm:"column:updated_at"`
}
