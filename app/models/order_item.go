package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem copies quantity and the product price at checkout time. The price
// is never recomputed from the catalog afterwards.
type OrderItem struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderID   string          `gorm:"size:36;not null;index"`
	ProductID string          `gorm:"size:36;not null;index"`
	Product   Product         `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}

// Subtotal is quantity times the frozen purchase price.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
