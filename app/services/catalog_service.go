package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"gorm.io/gorm"
)

// ProductsPerPage is the fixed catalog page size.
const ProductsPerPage = 12

type CatalogService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCatalogService(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

type BrowseParams struct {
	CategoryID string
	Search     string
	Sort       string
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Page       int
}

type CatalogPage struct {
	Products        []models.Product
	Categories      []repositories.CategoryProductCount
	CurrentCategory *models.Category
	TotalProducts   int64
	TotalPages      int
	Page            int
	PriceMin        decimal.Decimal
	PriceMax        decimal.Decimal
}

// Browse runs the filtered, paginated catalog query. An unknown category id
// leaves CurrentCategory nil without failing the query.
func (s *CatalogService) Browse(ctx context.Context, params BrowseParams) (*CatalogPage, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}

	var current *models.Category
	if params.CategoryID != "" {
		cat, err := s.categoryRepo.GetByID(ctx, params.CategoryID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve category %s: %w", params.CategoryID, err)
		}
		current = cat
	}

	filter := repositories.CatalogFilter{
		CategoryID: params.CategoryID,
		Search:     params.Search,
		PriceMin:   params.PriceMin,
		PriceMax:   params.PriceMax,
		Sort:       params.Sort,
		Limit:      ProductsPerPage,
		Offset:     (page - 1) * ProductsPerPage,
	}
	products, total, err := s.productRepo.Browse(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to browse products: %w", err)
	}

	bounds, err := s.productRepo.GetPriceBounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get price bounds: %w", err)
	}

	categories, err := s.categoryRepo.GetWithProductCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	totalPages := int((total + ProductsPerPage - 1) / ProductsPerPage)

	return &CatalogPage{
		Products:        products,
		Categories:      categories,
		CurrentCategory: current,
		TotalProducts:   total,
		TotalPages:      totalPages,
		Page:            page,
		PriceMin:        bounds.Min,
		PriceMax:        bounds.Max,
	}, nil
}

type HomePage struct {
	Categories []models.Category
	Featured   []models.Product
}

func (s *CatalogService) Home(ctx context.Context) (*HomePage, error) {
	categories, err := s.categoryRepo.GetFeatured(ctx, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to load home categories: %w", err)
	}
	featured, err := s.productRepo.GetFeatured(ctx, 8)
	if err != nil {
		return nil, fmt.Errorf("failed to load featured products: %w", err)
	}
	return &HomePage{Categories: categories, Featured: featured}, nil
}

type ProductDetail struct {
	Product *models.Product
	Related []models.Product
}

func (s *CatalogService) ProductDetail(ctx context.Context, productID string) (*ProductDetail, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}

	related, err := s.productRepo.GetRelated(ctx, product.CategoryID, product.ID, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to load related products: %w", err)
	}
	return &ProductDetail{Product: product, Related: related}, nil
}

type ShopPage struct {
	Products        []models.Product
	Categories      []models.Category
	CurrentCategory *models.Category
}

// Shop is the unpaginated listing with an optional category filter.
func (s *CatalogService) Shop(ctx context.Context, categoryID string) (*ShopPage, error) {
	var current *models.Category
	if categoryID != "" {
		cat, err := s.categoryRepo.GetByID(ctx, categoryID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve category %s: %w", categoryID, err)
		}
		current = cat
	}

	products, _, err := s.productRepo.Browse(ctx, repositories.CatalogFilter{CategoryID: categoryID})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ShopPage{Products: products, Categories: categories, CurrentCategory: current}, nil
}
