package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(repositories.NewCartItemRepository(db), repositories.NewProductRepository(db))
}

func TestCartAddMergesLines(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Fresh Vegetables")
	product := createProduct(t, db, category.ID, "Organic Tomatoes", 399, 50)

	item, err := svc.Add(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	item, err = svc.Add(ctx, user.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	items, err := svc.Items(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartAddCoercesQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Fresh Vegetables")
	product := createProduct(t, db, category.ID, "Organic Carrots", 239, 60)

	item, err := svc.Add(ctx, user.ID, product.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartAddUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "Alice", "alice@example.com", false)

	_, err := svc.Add(context.Background(), user.ID, "missing-id", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartSetQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Organic Fruits")
	product := createProduct(t, db, category.ID, "Organic Bananas", 319, 100)

	qty, err := svc.SetQuantity(ctx, user.ID, product.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, qty)

	// Set overwrites instead of incrementing.
	qty, err = svc.SetQuantity(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	// Zero deletes the line.
	qty, err = svc.SetQuantity(ctx, user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	items, err := svc.Items(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Zero on an absent line is a no-op, not an error.
	qty, err = svc.SetQuantity(ctx, user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestCartUpdateLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	other := createUser(t, db, "Bob", "bob@example.com", false)
	category := createCategory(t, db, "Organic Fruits")
	product := createProduct(t, db, category.ID, "Organic Apples", 479, 80)

	item, err := svc.Add(ctx, user.ID, product.ID, 1)
	require.NoError(t, err)

	qty, err := svc.UpdateLine(ctx, user.ID, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)

	// Another user cannot address the line.
	_, err = svc.UpdateLine(ctx, other.ID, item.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateLine(ctx, user.ID, "missing-line", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	qty, err = svc.UpdateLine(ctx, user.ID, item.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestCartRemoveLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Dairy Products")
	product := createProduct(t, db, category.ID, "Organic Milk", 439, 45)

	item, err := svc.Add(ctx, user.ID, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveLine(ctx, user.ID, item.ID))
	assert.ErrorIs(t, svc.RemoveLine(ctx, user.ID, item.ID), ErrNotFound)
}

func TestCartCountAndTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Fresh Vegetables")
	tomatoes := createProduct(t, db, category.ID, "Organic Tomatoes", 399, 50)
	spinach := createProduct(t, db, category.ID, "Organic Spinach", 279, 30)

	count, err := svc.Count(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = svc.Add(ctx, user.ID, tomatoes.ID, 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, user.ID, spinach.ID, 3)
	require.NoError(t, err)

	// The badge counts units, not lines.
	count, err = svc.Count(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	total, err := svc.Total(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(2*399+3*279)), "got total %s", total)
}

func TestCartQuantitiesMap(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Herbs & Spices")
	basil := createProduct(t, db, category.ID, "Organic Basil", 239, 40)

	_, err := svc.Add(ctx, user.ID, basil.ID, 2)
	require.NoError(t, err)

	quantities, err := svc.Quantities(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{basil.ID: 2}, quantities)
}
