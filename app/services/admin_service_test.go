package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"gorm.io/gorm"
)

func newAdminService(db *gorm.DB) *AdminService {
	return NewAdminService(
		repositories.NewProductRepository(db),
		repositories.NewCategoryRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewUserRepository(db),
	)
}

func TestAdminDashboard(t *testing.T) {
	db := newTestDB(t)
	adminSvc := newAdminService(db)
	cartSvc := newCartService(db)
	checkoutSvc := newCheckoutService(db)
	ctx := context.Background()

	createUser(t, db, "Admin User", "admin@greenharvest.com", true)
	alice := createUser(t, db, "Alice", "alice@example.com", false)
	createUser(t, db, "Bob", "bob@example.com", false)

	vegetables := createCategory(t, db, "Fresh Vegetables")
	createCategory(t, db, "Organic Honey")
	tomatoes := createProduct(t, db, vegetables.ID, "Organic Tomatoes", 399, 50)
	createProduct(t, db, vegetables.ID, "Organic Spinach", 279, 30)

	for i := 0; i < 2; i++ {
		_, err := cartSvc.Add(ctx, alice.ID, tomatoes.ID, 1)
		require.NoError(t, err)
		_, err = checkoutSvc.PlaceOrder(ctx, alice.ID, testShipping())
		require.NoError(t, err)
	}

	stats, err := adminSvc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.TotalCategories)
	assert.Equal(t, int64(2), stats.TotalOrders)
	// Admins are not customers.
	assert.Equal(t, int64(2), stats.TotalCustomers)

	perCategory := make(map[string]int64, len(stats.CategoryStats))
	for _, row := range stats.CategoryStats {
		perCategory[row.Name] = row.ProductCount
	}
	assert.Equal(t, int64(2), perCategory["Fresh Vegetables"])
	assert.Equal(t, int64(0), perCategory["Organic Honey"])

	assert.Len(t, stats.RecentProducts, 2)

	perCustomer := make(map[string]int64, len(stats.Customers))
	for _, row := range stats.Customers {
		perCustomer[row.User.Email] = row.OrderCount
	}
	assert.Equal(t, int64(2), perCustomer["alice@example.com"])
	assert.Equal(t, int64(0), perCustomer["bob@example.com"])
}

func TestAdminDashboardRecentProductsCap(t *testing.T) {
	db := newTestDB(t)
	adminSvc := newAdminService(db)
	ctx := context.Background()

	category := createCategory(t, db, "Fresh Vegetables")
	for i := 0; i < 12; i++ {
		createProduct(t, db, category.ID, "Veg", 100, 10)
	}

	stats, err := adminSvc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalProducts)
	assert.Len(t, stats.RecentProducts, 10)
}
