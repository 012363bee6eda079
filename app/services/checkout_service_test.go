package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"gorm.io/gorm"
)

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(db, repositories.NewCartItemRepository(db), repositories.NewOrderRepository(db))
}

func testShipping() ShippingDetails {
	return ShippingDetails{
		Name:       "Alice Example",
		Email:      "alice@example.com",
		Address:    "42 Long Enough Street, Apt 7",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "India",
	}
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	checkoutSvc := newCheckoutService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Fresh Vegetables")
	tomatoes := createProduct(t, db, category.ID, "Organic Tomatoes", 399, 50)

	_, err := cartSvc.Add(ctx, user.ID, tomatoes.ID, 2)
	require.NoError(t, err)

	order, err := checkoutSvc.PlaceOrder(ctx, user.ID, testShipping())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(798)), "got total %s", order.TotalAmount)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 2, order.OrderItems[0].Quantity)
	assert.True(t, order.OrderItems[0].Price.Equal(decimal.NewFromInt(399)))
	assert.Equal(t, "Alice Example", order.ShippingName)

	// Checkout empties the cart.
	count, err := cartSvc.Count(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	checkoutSvc := newCheckoutService(db)

	user := createUser(t, db, "Alice", "alice@example.com", false)

	_, err := checkoutSvc.PlaceOrder(context.Background(), user.ID, testShipping())
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestOrderItemsKeepFrozenPrice(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	checkoutSvc := newCheckoutService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Herbs & Spices")
	basil := createProduct(t, db, category.ID, "Organic Basil", 239, 40)

	_, err := cartSvc.Add(ctx, user.ID, basil.ID, 1)
	require.NoError(t, err)
	order, err := checkoutSvc.PlaceOrder(ctx, user.ID, testShipping())
	require.NoError(t, err)

	// A later catalog price change must not touch the order.
	basil.Price = decimal.NewFromInt(999)
	require.NoError(t, db.Save(basil).Error)

	reloaded, err := checkoutSvc.OrderForUser(ctx, user.ID, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.OrderItems, 1)
	assert.True(t, reloaded.OrderItems[0].Price.Equal(decimal.NewFromInt(239)),
		"got frozen price %s", reloaded.OrderItems[0].Price)
}

func TestCancelOrder(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	checkoutSvc := newCheckoutService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	other := createUser(t, db, "Bob", "bob@example.com", false)
	category := createCategory(t, db, "Organic Fruits")
	apples := createProduct(t, db, category.ID, "Organic Apples", 479, 80)

	_, err := cartSvc.Add(ctx, user.ID, apples.ID, 1)
	require.NoError(t, err)
	order, err := checkoutSvc.PlaceOrder(ctx, user.ID, testShipping())
	require.NoError(t, err)

	// Other users cannot see, let alone cancel, the order.
	assert.ErrorIs(t, checkoutSvc.Cancel(ctx, other.ID, order.ID), ErrNotFound)

	require.NoError(t, checkoutSvc.Cancel(ctx, user.ID, order.ID))
	reloaded, err := checkoutSvc.OrderForUser(ctx, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, reloaded.Status)

	// Cancelled is terminal.
	assert.ErrorIs(t, checkoutSvc.Cancel(ctx, user.ID, order.ID), ErrOrderNotCancellable)
}

func TestCancelGuardPerStatus(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	checkoutSvc := newCheckoutService(db)
	orderRepo := repositories.NewOrderRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Dairy Products")
	milk := createProduct(t, db, category.ID, "Organic Milk", 439, 45)

	cases := []struct {
		status      string
		cancellable bool
	}{
		{models.OrderStatusPending, true},
		{models.OrderStatusProcessing, true},
		{models.OrderStatusShipped, false},
		{models.OrderStatusDelivered, false},
		{models.OrderStatusCancelled, false},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			_, err := cartSvc.Add(ctx, user.ID, milk.ID, 1)
			require.NoError(t, err)
			order, err := checkoutSvc.PlaceOrder(ctx, user.ID, testShipping())
			require.NoError(t, err)
			require.NoError(t, orderRepo.UpdateStatus(ctx, order.ID, tc.status))

			err = checkoutSvc.Cancel(ctx, user.ID, order.ID)
			if tc.cancellable {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrOrderNotCancellable)
			}
		})
	}
}

func TestOrdersForUserListsAll(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	checkoutSvc := newCheckoutService(db)
	ctx := context.Background()

	user := createUser(t, db, "Alice", "alice@example.com", false)
	category := createCategory(t, db, "Organic Honey")
	honey := createProduct(t, db, category.ID, "Raw Organic Honey", 1199, 35)

	for i := 0; i < 3; i++ {
		_, err := cartSvc.Add(ctx, user.ID, honey.ID, 1)
		require.NoError(t, err)
		_, err = checkoutSvc.PlaceOrder(ctx, user.ID, testShipping())
		require.NoError(t, err)
	}

	orders, err := checkoutSvc.OrdersForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)
}
