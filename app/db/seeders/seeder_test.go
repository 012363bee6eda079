package seeders

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models/migrations"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func TestDBSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, DBSeed(db))
	require.NoError(t, DBSeed(db))

	var categories, products int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.Equal(t, int64(6), categories)
	assert.Equal(t, int64(21), products)

	var admin models.User
	require.NoError(t, db.First(&admin, "email = ?", defaultAdminEmail).Error)
	assert.True(t, admin.IsAdmin)
}

func TestDBSeedPromotesExistingAdmin(t *testing.T) {
	db := newTestDB(t)

	existing := models.User{
		Name:         "Admin User",
		Email:        defaultAdminEmail,
		PasswordHash: "whatever",
	}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, DBSeed(db))

	var admin models.User
	require.NoError(t, db.First(&admin, "email = ?", defaultAdminEmail).Error)
	assert.True(t, admin.IsAdmin)
}
