package repositories

import (
	"context"

	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"gorm.io/gorm"
)

type UserOrderCount struct {
	UserID     string
	OrderCount int64
}

type OrderRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	FindByIDForUser(ctx context.Context, orderID, userID string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	Count(ctx context.Context) (int64, error)
	CountsByUser(ctx context.Context) ([]UserOrderCount, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db}
}

// Create inserts the order and its items through the caller's transaction.
func (r *orderRepository) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByIDForUser(ctx context.Context, orderID, userID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&total).Error
	return total, err
}

func (r *orderRepository) CountsByUser(ctx context.Context) ([]UserOrderCount, error) {
	var rows []UserOrderCount
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("user_id AS user_id, COUNT(*) AS order_count").
		Group("user_id").
		Scan(&rows).Error
	return rows, err
}
