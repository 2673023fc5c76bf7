package services

import (
	"context"
	"testing"

	"github.com/quintory/storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func janeDetails() ContactDetails {
	return ContactDetails{
		FullName: "Jane",
		Email:    "j@example.com",
		Address:  "1 Main Street",
		City:     "Springfield",
		Postcode: "12345",
	}
}

func TestCheckoutSnapshotsCart(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	productA := env.createProduct(t, "novel", "10.00", true)
	productB := env.createProduct(t, "mug", "5.00", true)

	identity := models.Identity{SessionKey: "session-1"}
	cart, err := env.cartSvc.ResolveCart(ctx, identity)
	require.NoError(t, err)
	require.NoError(t, env.cartSvc.AddItem(ctx, cart, productA.ID, 2))
	require.NoError(t, env.cartSvc.AddItem(ctx, cart, productB.ID, 1))

	order, err := env.checkoutSvc.Checkout(ctx, cart, janeDetails())
	require.NoError(t, err)

	assert.Equal(t, "25.00", order.Total.StringFixed(2))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Jane", order.FullName)
	assert.Equal(t, "j@example.com", order.Email)
	require.NotNil(t, order.CartID)
	assert.Equal(t, cart.ID, *order.CartID)
	assert.Nil(t, order.UserID)

	var reloaded models.Cart
	require.NoError(t, env.db.First(&reloaded, "id = ?", cart.ID).Error)
	assert.False(t, reloaded.IsActive())
}

func TestCheckoutUserCartCarriesUser(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "novel", "10.00", true)

	identity := models.Identity{UserID: "user-1"}
	cart, err := env.cartSvc.ResolveCart(ctx, identity)
	require.NoError(t, err)
	require.NoError(t, env.cartSvc.AddItem(ctx, cart, product.ID, 1))

	order, err := env.checkoutSvc.Checkout(ctx, cart, janeDetails())
	require.NoError(t, err)

	require.NotNil(t, order.UserID)
	assert.Equal(t, "user-1", *order.UserID)
}

func TestCheckoutEmptyCartRefused(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	identity := models.Identity{SessionKey: "session-1"}
	cart, err := env.cartSvc.ResolveCart(ctx, identity)
	require.NoError(t, err)

	_, err = env.checkoutSvc.Checkout(ctx, cart, janeDetails())
	assert.ErrorIs(t, err, ErrCartEmpty)

	// No order written and the cart is untouched.
	var orders int64
	require.NoError(t, env.db.Model(&models.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(0), orders)

	var reloaded models.Cart
	require.NoError(t, env.db.First(&reloaded, "id = ?", cart.ID).Error)
	assert.True(t, reloaded.IsActive())
}

func TestNextResolutionAfterCheckoutIsFreshCart(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "novel", "10.00", true)

	identity := models.Identity{SessionKey: "session-1"}
	cart, err := env.cartSvc.ResolveCart(ctx, identity)
	require.NoError(t, err)
	require.NoError(t, env.cartSvc.AddItem(ctx, cart, product.ID, 2))

	_, err = env.checkoutSvc.Checkout(ctx, cart, janeDetails())
	require.NoError(t, err)

	fresh, err := env.cartSvc.GetCart(ctx, identity)
	require.NoError(t, err)

	assert.NotEqual(t, cart.ID, fresh.ID)
	assert.True(t, fresh.IsActive())
	assert.Empty(t, fresh.CartItems)
	assert.Equal(t, "0.00", fresh.Total().StringFixed(2))
}

func TestCheckoutTotalFrozenAgainstLaterPriceChange(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "novel", "10.00", true)

	identity := models.Identity{SessionKey: "session-1"}
	cart, err := env.cartSvc.ResolveCart(ctx, identity)
	require.NoError(t, err)
	require.NoError(t, env.cartSvc.AddItem(ctx, cart, product.ID, 1))

	order, err := env.checkoutSvc.Checkout(ctx, cart, janeDetails())
	require.NoError(t, err)

	require.NoError(t, env.db.Model(product).Update("price", "99.00").Error)

	var reloaded models.Order
	require.NoError(t, env.db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, "10.00", reloaded.Total.StringFixed(2))
}
