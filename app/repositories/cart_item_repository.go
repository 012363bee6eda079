package repositories

import (
	"context"
	"database/sql"

	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"gorm.io/gorm"
)

type CartItemRepositoryImpl interface {
	Create(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error)
	FindByIDForUser(ctx context.Context, lineID, userID string) (*models.CartItem, error)
	DeleteByUserAndProduct(ctx context.Context, userID, productID string) error
	DeleteByIDForUser(ctx context.Context, lineID, userID string) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	SumQuantities(ctx context.Context, userID string) (int64, error)
	ClearForUser(ctx context.Context, tx *gorm.DB, userID string) error
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &cartItemRepository{db}
}

func (r *cartItemRepository) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartItemRepository) Update(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartItemRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) FindByIDForUser(ctx context.Context, lineID, userID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) DeleteByUserAndProduct(ctx context.Context, userID, productID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

// DeleteByIDForUser reports the number of rows removed so callers can tell a
// missing line apart from a successful delete.
func (r *cartItemRepository) DeleteByIDForUser(ctx context.Context, lineID, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *cartItemRepository) ListByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *cartItemRepository) SumQuantities(ctx context.Context, userID string) (int64, error) {
	var total sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Select("SUM(quantity)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.Int64, nil
}

// ClearForUser runs inside the caller's transaction so checkout can clear the
// cart and create the order as one atomic write.
func (r *cartItemRepository) ClearForUser(ctx context.Context, tx *gorm.DB, userID string) error {
	return tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
