package repositories

import (
	"context"

	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"gorm.io/gorm"
)

type CategoryProductCount struct {
	CategoryID   string
	Name         string
	Image        string
	ProductCount int64
}

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Count(ctx context.Context) (int64, error)
	GetWithProductCounts(ctx context.Context) ([]CategoryProductCount, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetFeatured(ctx context.Context, limit int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Limit(limit).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&total).Error
	return total, err
}

// GetWithProductCounts is a grouped count per category, not a join
// materialization. Categories without products still appear with zero.
func (r *categoryRepository) GetWithProductCounts(ctx context.Context) ([]CategoryProductCount, error) {
	var rows []CategoryProductCount
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("categories.id AS category_id, categories.name AS name, categories.image AS image, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id").
		Group("categories.id, categories.name, categories.image").
		Order("categories.name ASC").
		Scan(&rows).Error
	return rows, err
}
