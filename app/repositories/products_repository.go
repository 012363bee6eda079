package repositories

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"gorm.io/gorm"
)

const (
	SortPriceLowToHigh = "low_to_high"
	SortPriceHighToLow = "high_to_low"
)

// CatalogFilter narrows a product listing. Zero values mean "no filter".
type CatalogFilter struct {
	CategoryID string
	Search     string
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Sort       string
	Limit      int
	Offset     int
}

type PriceBounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	Browse(ctx context.Context, filter CatalogFilter) ([]models.Product, int64, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Product, error)
	GetRecent(ctx context.Context, limit int) ([]models.Product, error)
	GetRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]models.Product, error)
	GetPriceBounds(ctx context.Context) (PriceBounds, error)
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes the product together with any cart and wishlist rows that
// reference it. Order items keep their frozen copy of the product data.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}

func (r *productRepository) applyFilter(db *gorm.DB, filter CatalogFilter) *gorm.DB {
	if filter.CategoryID != "" {
		db = db.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.PriceMin != nil {
		db = db.Where("price >= ?", filter.PriceMin)
	}
	if filter.PriceMax != nil {
		db = db.Where("price <= ?", filter.PriceMax)
	}
	return db
}

func (r *productRepository) Browse(ctx context.Context, filter CatalogFilter) ([]models.Product, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Product{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.applyFilter(r.db.WithContext(ctx).Preload("Category"), filter)
	switch filter.Sort {
	case SortPriceLowToHigh:
		query = query.Order("price ASC")
	case SortPriceHighToLow:
		query = query.Order("price DESC")
	default:
		query = query.Order("created_at DESC")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var products []models.Product
	err := query.Find(&products).Error
	return products, total, err
}

func (r *productRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) GetRecent(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) GetRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND id <> ?", categoryID, excludeID).
		Limit(limit).
		Find(&products).Error
	return products, err
}

// GetPriceBounds returns the global min and max product price, used for the
// catalog page's range-slider bounds.
func (r *productRepository) GetPriceBounds(ctx context.Context) (PriceBounds, error) {
	var row struct {
		Min decimal.NullDecimal
		Max decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("MIN(price) AS min, MAX(price) AS max").
		Scan(&row).Error
	if err != nil {
		return PriceBounds{}, err
	}
	bounds := PriceBounds{}
	if row.Min.Valid {
		bounds.Min = row.Min.Decimal
	}
	if row.Max.Valid {
		bounds.Max = row.Max.Decimal
	}
	return bounds, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}
