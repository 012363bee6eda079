package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one (user, product, quantity) line. Quantity is always >= 1
// while the line exists; a transition to zero deletes the row instead.
type CartItem struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string  `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product"`
	ProductID string  `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product"`
	Product   Product `gorm:"foreignKey:ProductID"`
	Quantity  int     `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
