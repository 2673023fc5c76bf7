package repositories

import (
	"context"
	"testing"

	"github.com/quintory/storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOneActiveCartPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	userID := "user-1"
	first := &models.Cart{UserID: &userID, Active: models.ActiveFlag()}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Cart{UserID: &userID, Active: models.ActiveFlag()}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestOneActiveCartPerSessionKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	key := "session-1"
	first := &models.Cart{SessionKey: &key, Active: models.ActiveFlag()}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Cart{SessionKey: &key, Active: models.ActiveFlag()}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestDeactivateFreesActiveSlot(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	userID := "user-1"
	first := &models.Cart{UserID: &userID, Active: models.ActiveFlag()}
	require.NoError(t, repo.Create(ctx, first))

	require.NoError(t, repo.Deactivate(ctx, db, first.ID))

	// Any number of checked-out carts may coexist; a new active one
	// is allowed again.
	second := &models.Cart{UserID: &userID, Active: models.ActiveFlag()}
	require.NoError(t, repo.Create(ctx, second))

	_, err := repo.FindActiveByUser(ctx, userID)
	require.NoError(t, err)

	var reloaded models.Cart
	require.NoError(t, db.First(&reloaded, "id = ?", first.ID).Error)
	assert.False(t, reloaded.IsActive())
}

func TestCartItemUniquePerCartAndProduct(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := NewCartRepository(db)
	itemRepo := NewCartItemRepository(db)
	ctx := context.Background()

	category := createCategory(t, db, "Books", "books")
	product := createProduct(t, db, category, "Novel", "novel", "15.00", true)

	key := "session-1"
	cart := &models.Cart{SessionKey: &key, Active: models.ActiveFlag()}
	require.NoError(t, cartRepo.Create(ctx, cart))

	require.NoError(t, itemRepo.Add(ctx, &models.CartItem{CartID: cart.ID, ProductID: product.ID, Qty: 1}))

	err := itemRepo.Add(ctx, &models.CartItem{CartID: cart.ID, ProductID: product.ID, Qty: 1})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGetWithItemsAndCount(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := NewCartRepository(db)
	itemRepo := NewCartItemRepository(db)
	ctx := context.Background()

	category := createCategory(t, db, "Books", "books")
	product := createProduct(t, db, category, "Novel", "novel", "15.00", true)

	key := "session-1"
	cart := &models.Cart{SessionKey: &key, Active: models.ActiveFlag()}
	require.NoError(t, cartRepo.Create(ctx, cart))
	require.NoError(t, itemRepo.Add(ctx, &models.CartItem{CartID: cart.ID, ProductID: product.ID, Qty: 2}))

	loaded, err := cartRepo.GetWithItems(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, loaded.CartItems, 1)
	require.NotNil(t, loaded.CartItems[0].Product)
	assert.Equal(t, "Novel", loaded.CartItems[0].Product.Title)
	assert.Equal(t, "30.00", loaded.Total().StringFixed(2))

	count, err := cartRepo.GetItemCount(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestItemLookupScopedToCart(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := NewCartRepository(db)
	itemRepo := NewCartItemRepository(db)
	ctx := context.Background()

	category := createCategory(t, db, "Books", "books")
	product := createProduct(t, db, category, "Novel", "novel", "15.00", true)

	keyA, keyB := "session-a", "session-b"
	cartA := &models.Cart{SessionKey: &keyA, Active: models.ActiveFlag()}
	cartB := &models.Cart{SessionKey: &keyB, Active: models.ActiveFlag()}
	require.NoError(t, cartRepo.Create(ctx, cartA))
	require.NoError(t, cartRepo.Create(ctx, cartB))

	item := &models.CartItem{CartID: cartA.ID, ProductID: product.ID, Qty: 1}
	require.NoError(t, itemRepo.Add(ctx, item))

	_, err := itemRepo.GetByIDForCart(ctx, item.ID, cartB.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := itemRepo.GetByIDForCart(ctx, item.ID, cartA.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)
}
