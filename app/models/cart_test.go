package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartTotalEmpty(t *testing.T) {
	cart := &Cart{}

	total := cart.Total()

	assert.True(t, total.Equal(decimal.Zero))
	assert.Equal(t, "0.00", total.StringFixed(2))
}

func TestCartTotalSumsItems(t *testing.T) {
	productA := &Product{Price: decimal.RequireFromString("10.00")}
	productB := &Product{Price: decimal.RequireFromString("5.00")}

	cart := &Cart{
		CartItems: []CartItem{
			{Product: productA, Qty: 2},
			{Product: productB, Qty: 1},
		},
	}

	assert.Equal(t, "25.00", cart.Total().StringFixed(2))
}

func TestCartItemTotalPrice(t *testing.T) {
	item := CartItem{
		Product: &Product{Price: decimal.RequireFromString("3.50")},
		Qty:     3,
	}

	assert.Equal(t, "10.50", item.TotalPrice().StringFixed(2))
}

func TestCartItemTotalPriceWithoutProduct(t *testing.T) {
	item := CartItem{Qty: 4}

	assert.True(t, item.TotalPrice().Equal(decimal.Zero))
}

func TestCartIsActive(t *testing.T) {
	assert.True(t, (&Cart{Active: ActiveFlag()}).IsActive())
	assert.False(t, (&Cart{}).IsActive())

	inactive := false
	assert.False(t, (&Cart{Active: &inactive}).IsActive())
}

func TestIdentity(t *testing.T) {
	assert.True(t, Identity{}.Empty())
	assert.True(t, Identity{SessionKey: "abc"}.Anonymous())
	assert.False(t, Identity{UserID: "u1"}.Anonymous())
	assert.False(t, Identity{UserID: "u1"}.Empty())
}
