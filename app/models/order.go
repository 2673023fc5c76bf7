package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order is the immutable snapshot taken at checkout. Contact fields are
// copied verbatim from the checkout form and the total is frozen at the
// instant of creation. The cart reference is weak: deleting the cart
// nulls it rather than cascading into the order.
type Order struct {
	ID       string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CartID   *string `gorm:"size:36;index"`
	Cart     *Cart   `gorm:"foreignKey:CartID;constraint:OnDelete:SET NULL"`
	UserID   *string `gorm:"size:36;index"`
	User     *User   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	FullName string  `gorm:"size:200;not null"`
	Email    string  `gorm:"size:254;not null"`
	Address  string  `gorm:"size:500;not null"`
	City     string  `gorm:"size:100;not null"`
	Postcode string  `gorm:"size:20;not null"`

	Total  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status string          `gorm:"size:20;not null;default:'pending'"`

	CreatedAt time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
