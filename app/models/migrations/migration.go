package migrations

import (
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.WishlistItem{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{})
}
