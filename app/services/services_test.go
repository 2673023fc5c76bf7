package services

import (
	"testing"

	"github.com/quintory/storefront/app/models"
	"github.com/quintory/storefront/app/models/migrations"
	"github.com/quintory/storefront/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	cartSvc     *CartService
	checkoutSvc *CheckoutService
}

func setupTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))

	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	return &testEnv{
		db:          db,
		cartSvc:     NewCartService(cartRepo, cartItemRepo, productRepo),
		checkoutSvc: NewCheckoutService(db, cartRepo, orderRepo),
	}
}

func (e *testEnv) createProduct(t *testing.T, title, price string, available bool) *models.Product {
	t.Helper()
	category := &models.Category{Name: "Category for " + title, Slug: "category-" + title}
	require.NoError(t, e.db.FirstOrCreate(category, models.Category{Slug: category.Slug}).Error)

	product := &models.Product{
		CategoryID: category.ID,
		Title:      title,
		Slug:       title,
		Price:      decimal.RequireFromString(price),
		Available:  available,
	}
	require.NoError(t, e.db.Create(product).Error)
	return product
}
