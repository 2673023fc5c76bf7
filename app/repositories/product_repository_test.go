package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailablePaginatedFiltersAndOrders(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := createCategory(t, db, "Books", "books")
	older := createProduct(t, db, category, "Older", "older", "10.00", true)
	newer := createProduct(t, db, category, "Newer", "newer", "12.00", true)
	hidden := createProduct(t, db, category, "Hidden", "hidden", "9.00", false)

	// force a deterministic newest-first order
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	require.NoError(t, db.Model(newer).Update("created_at", time.Now()).Error)

	products, total, err := repo.GetAvailablePaginated(ctx, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, products, 2)
	assert.Equal(t, "Newer", products[0].Title)
	assert.Equal(t, "Older", products[1].Title)
	for _, p := range products {
		assert.NotEqual(t, hidden.ID, p.ID)
	}
}

func TestGetByCategorySlugPaginated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	books := createCategory(t, db, "Books", "books")
	toys := createCategory(t, db, "Toys", "toys")
	createProduct(t, db, books, "Novel", "novel", "15.00", true)
	createProduct(t, db, toys, "Blocks", "blocks", "20.00", true)

	products, total, err := repo.GetByCategorySlugPaginated(ctx, "books", 10, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Novel", products[0].Title)
}

func TestGetBySlugUnavailableIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := createCategory(t, db, "Books", "books")
	createProduct(t, db, category, "Hidden", "hidden", "9.00", false)

	_, err := repo.GetBySlug(ctx, "hidden")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAvailableByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := createCategory(t, db, "Books", "books")
	product := createProduct(t, db, category, "Novel", "novel", "15.00", true)

	found, err := repo.GetAvailableByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)

	require.NoError(t, db.Model(product).Update("available", false).Error)

	_, err = repo.GetAvailableByID(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoriesOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	createCategory(t, db, "Toys", "toys")
	createCategory(t, db, "Books", "books")

	categories, err := repo.GetAll(ctx)
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Books", categories[0].Name)
	assert.Equal(t, "Toys", categories[1].Name)
}
