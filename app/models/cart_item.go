package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one (product, quantity) line inside a cart. The composite
// unique index keeps it to one row per (cart, product); repeated adds
// bump the quantity instead of inserting.
type CartItem struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CartID    string   `gorm:"size:36;not null;uniqueIndex:uniq_cart_product,priority:1"`
	Cart      *Cart    `gorm:"foreignKey:CartID"`
	ProductID string   `gorm:"size:36;not null;uniqueIndex:uniq_cart_product,priority:2"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	Qty       int      `gorm:"not null;default:1"`
	AddedAt   time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	if ci.AddedAt.IsZero() {
		ci.AddedAt = time.Now()
	}
	return
}

func (ci *CartItem) TotalPrice() decimal.Decimal {
	if ci.Product == nil {
		return decimal.Zero
	}
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Qty)))
}
