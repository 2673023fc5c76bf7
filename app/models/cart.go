package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart belongs to exactly one identity: either a user or an anonymous
// session key. Active is a nullable flag: true while the cart is open,
// NULL once it has been checked out. Because NULLs never collide inside
// a unique index, the two composite indexes below allow any number of
// checked-out carts per identity while rejecting a second active one.
type Cart struct {
	ID         string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID     *string `gorm:"size:36;uniqueIndex:uniq_active_user_cart,priority:1"`
	User       *User   `gorm:"foreignKey:UserID"`
	SessionKey *string `gorm:"size:40;uniqueIndex:uniq_active_session_cart,priority:1"`
	Active     *bool   `gorm:"uniqueIndex:uniq_active_user_cart,priority:2;uniqueIndex:uniq_active_session_cart,priority:2"`
	CartItems  []CartItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// ActiveFlag is the value stored in carts.active for an open cart.
func ActiveFlag() *bool {
	v := true
	return &v
}

func (c *Cart) IsActive() bool {
	return c.Active != nil && *c.Active
}

// Total is derived, never stored: the sum over all items of
// unit price times quantity. Requires CartItems.Product preloaded.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.CartItems {
		total = total.Add(item.TotalPrice())
	}
	return total
}
