package repositories

import (
	"testing"

	"github.com/quintory/storefront/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.Cart{}, &models.CartItem{}, &models.Order{}))
	return db
}

func createCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: slug}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createProduct(t *testing.T, db *gorm.DB, category *models.Category, title, slug, price string, available bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: category.ID,
		Title:      title,
		Slug:       slug,
		Price:      decimal.RequireFromString(price),
		Available:  available,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
