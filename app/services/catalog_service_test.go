package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(repositories.NewProductRepository(db), repositories.NewCategoryRepository(db))
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestBrowseSearchWithPriceCap(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	ctx := context.Background()

	vegetables := createCategory(t, db, "Fresh Vegetables")
	herbs := createCategory(t, db, "Herbs & Spices")
	createProduct(t, db, vegetables.ID, "Organic Tomatoes", 399, 50)
	createProduct(t, db, herbs.ID, "Organic Basil", 239, 40)
	createProduct(t, db, herbs.ID, "Organic Turmeric", 639, 50)

	// Matching is case-insensitive over name and description.
	page, err := svc.Browse(ctx, BrowseParams{Search: "ORGAN", PriceMax: decimalPtr(300)})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Organic Basil", page.Products[0].Name)
	assert.Equal(t, int64(1), page.TotalProducts)
}

func TestBrowseCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	ctx := context.Background()

	fruits := createCategory(t, db, "Organic Fruits")
	dairy := createCategory(t, db, "Dairy Products")
	createProduct(t, db, fruits.ID, "Organic Apples", 479, 80)
	createProduct(t, db, fruits.ID, "Organic Bananas", 319, 100)
	createProduct(t, db, dairy.ID, "Organic Milk", 439, 45)

	page, err := svc.Browse(ctx, BrowseParams{CategoryID: fruits.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalProducts)
	require.NotNil(t, page.CurrentCategory)
	assert.Equal(t, "Organic Fruits", page.CurrentCategory.Name)

	// An unknown category id returns an unfiltered current of nil, not an
	// error page.
	page, err = svc.Browse(ctx, BrowseParams{CategoryID: "does-not-exist"})
	require.NoError(t, err)
	assert.Nil(t, page.CurrentCategory)
}

func TestBrowsePriceSort(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	ctx := context.Background()

	pantry := createCategory(t, db, "Grains & Cereals")
	createProduct(t, db, pantry.ID, "Organic Quinoa", 1039, 50)
	createProduct(t, db, pantry.ID, "Organic Oats", 559, 80)
	createProduct(t, db, pantry.ID, "Organic Brown Rice", 719, 100)

	page, err := svc.Browse(ctx, BrowseParams{Sort: repositories.SortPriceLowToHigh})
	require.NoError(t, err)
	require.Len(t, page.Products, 3)
	assert.Equal(t, "Organic Oats", page.Products[0].Name)
	assert.Equal(t, "Organic Quinoa", page.Products[2].Name)

	page, err = svc.Browse(ctx, BrowseParams{Sort: repositories.SortPriceHighToLow})
	require.NoError(t, err)
	assert.Equal(t, "Organic Quinoa", page.Products[0].Name)
}

func TestBrowsePagination(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	ctx := context.Background()

	category := createCategory(t, db, "Fresh Vegetables")
	for i := 0; i < ProductsPerPage+3; i++ {
		createProduct(t, db, category.ID, fmt.Sprintf("Veg %02d", i), int64(100+i), 10)
	}

	page, err := svc.Browse(ctx, BrowseParams{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Products, ProductsPerPage)
	assert.Equal(t, int64(ProductsPerPage+3), page.TotalProducts)
	assert.Equal(t, 2, page.TotalPages)

	page, err = svc.Browse(ctx, BrowseParams{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page.Products, 3)

	// Page zero clamps to one.
	page, err = svc.Browse(ctx, BrowseParams{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestBrowsePriceBounds(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	ctx := context.Background()

	category := createCategory(t, db, "Herbs & Spices")
	createProduct(t, db, category.ID, "Organic Basil", 239, 40)
	createProduct(t, db, category.ID, "Extra Virgin Olive Oil", 1299, 40)

	page, err := svc.Browse(ctx, BrowseParams{})
	require.NoError(t, err)
	assert.True(t, page.PriceMin.Equal(decimal.NewFromInt(239)), "got min %s", page.PriceMin)
	assert.True(t, page.PriceMax.Equal(decimal.NewFromInt(1299)), "got max %s", page.PriceMax)
}

func TestProductDetail(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	ctx := context.Background()

	category := createCategory(t, db, "Organic Fruits")
	apples := createProduct(t, db, category.ID, "Organic Apples", 479, 80)
	createProduct(t, db, category.ID, "Organic Bananas", 319, 100)
	createProduct(t, db, category.ID, "Organic Oranges", 399, 70)

	detail, err := svc.ProductDetail(ctx, apples.ID)
	require.NoError(t, err)
	assert.Equal(t, "Organic Apples", detail.Product.Name)
	assert.Len(t, detail.Related, 2)
	for _, related := range detail.Related {
		assert.NotEqual(t, apples.ID, related.ID)
	}

	_, err = svc.ProductDetail(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryProductCountsIncludeEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	ctx := context.Background()

	stocked := createCategory(t, db, "Dairy Products")
	createCategory(t, db, "Organic Honey")
	createProduct(t, db, stocked.ID, "Organic Cheese", 799, 30)

	page, err := svc.Browse(ctx, BrowseParams{})
	require.NoError(t, err)

	counts := make(map[string]int64, len(page.Categories))
	for _, row := range page.Categories {
		counts[row.Name] = row.ProductCount
	}
	assert.Equal(t, int64(1), counts["Dairy Products"])
	assert.Equal(t, int64(0), counts["Organic Honey"])
}
