package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"gorm.io/gorm"
)

func newWishlistService(db *gorm.DB) *WishlistService {
	return NewWishlistService(repositories.NewWishlistRepository(db), repositories.NewProductRepository(db))
}

func TestWishlistToggleIsSelfInverse(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Organic Fruits")
	guava := createProduct(t, db, category.ID, "Fresh Guava", 359, 55)

	action, count, err := svc.Toggle(ctx, user.ID, guava.ID)
	require.NoError(t, err)
	assert.Equal(t, WishlistActionAdded, action)
	assert.Equal(t, int64(1), count)

	action, count, err = svc.Toggle(ctx, user.ID, guava.ID)
	require.NoError(t, err)
	assert.Equal(t, WishlistActionRemoved, action)
	assert.Equal(t, int64(0), count)

	items, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWishlistToggleUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(db)

	user := createUser(t, db, "Alice", "alice@example.com", false)

	_, _, err := svc.Toggle(context.Background(), user.ID, "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWishlistIsPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(db)
	ctx := context.Background()

	alice := createUser(t, db, "Alice", "alice@example.com", false)
	bob := createUser(t, db, "Bob", "bob@example.com", false)
	category := createCategory(t, db, "Grains & Cereals")
	quinoa := createProduct(t, db, category.ID, "Organic Quinoa", 1039, 50)
	oats := createProduct(t, db, category.ID, "Organic Oats", 559, 80)

	_, _, err := svc.Toggle(ctx, alice.ID, quinoa.ID)
	require.NoError(t, err)
	_, _, err = svc.Toggle(ctx, alice.ID, oats.ID)
	require.NoError(t, err)
	_, _, err = svc.Toggle(ctx, bob.ID, oats.ID)
	require.NoError(t, err)

	aliceCount, err := svc.Count(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), aliceCount)

	bobIDs, err := svc.ProductIDs(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{oats.ID: true}, bobIDs)
}

func TestWishlistRemove(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Herbs & Spices")
	turmeric := createProduct(t, db, category.ID, "Organic Turmeric", 639, 50)

	_, _, err := svc.Toggle(ctx, user.ID, turmeric.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, user.ID, turmeric.ID))
	assert.ErrorIs(t, svc.Remove(ctx, user.ID, turmeric.ID), ErrNotFound)
}
