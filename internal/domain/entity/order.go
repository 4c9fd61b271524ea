package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the coarse business status shown on pharmacy orders.
// It is derived from the tracking status through a fixed mapping.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is the pharmacy order this service tracks. Cart, payment and
// fulfillment live elsewhere; only the denormalized status is written here.
type Order struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrderNumber string      `gorm:"type:varchar(30);uniqueIndex;not null" json:"order_number"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Total       float64     `gorm:"not null;default:0" json:"total"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
