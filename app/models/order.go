package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is immutable once created except for its status field.
type Order struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID      string          `gorm:"size:36;not null;index"`
	User        User            `gorm:"foreignKey:UserID"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Status      string          `gorm:"size:50;not null;default:'pending'"`

	ShippingName       string `gorm:"size:100"`
	ShippingEmail      string `gorm:"size:120"`
	ShippingAddress    string `gorm:"type:text"`
	ShippingCity       string `gorm:"size:100"`
	ShippingPostalCode string `gorm:"size:20"`
	ShippingCountry    string `gorm:"size:100"`

	OrderItems []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

// CanCancel reports whether a user-initiated cancellation is still allowed.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}
