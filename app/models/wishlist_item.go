package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistItem holds at most one row per (user, product) pair; the toggle
// operation flips its existence.
type WishlistItem struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string  `gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID string  `gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product"`
	Product   Product `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
}

func (w *WishlistItem) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}
