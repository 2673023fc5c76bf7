package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/quintory/storefront/app/models"
	"github.com/quintory/storefront/app/repositories"
	"gorm.io/gorm"
)

// ErrCartEmpty is the recognized refusal when a checkout is submitted
// against a cart with no items. Not a failure: the caller redirects
// back to the catalog.
var ErrCartEmpty = errors.New("cart has no items to check out")

// ContactDetails are the shipping/contact fields copied verbatim onto
// the order. Field-level validation happens at the form layer.
type ContactDetails struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Address  string `validate:"required"`
	City     string `validate:"required"`
	Postcode string `validate:"required"`
}

type CheckoutService struct {
	db        *gorm.DB
	cartRepo  repositories.CartRepositoryImpl
	orderRepo repositories.OrderRepositoryImpl
}

func NewCheckoutService(db *gorm.DB, cartRepo repositories.CartRepositoryImpl, orderRepo repositories.OrderRepositoryImpl) *CheckoutService {
	return &CheckoutService{
		db:        db,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
	}
}

// Checkout snapshots the cart into a pending order and retires the
// cart. Both writes share one transaction, so a crash can never leave
// an order pointing at a still-active cart. The frozen total is the
// cart's derived total at this instant.
func (s *CheckoutService) Checkout(ctx context.Context, cart *models.Cart, details ContactDetails) (*models.Order, error) {
	// Reload so the snapshot covers mutations made since the caller
	// fetched the cart.
	cart, err := s.cartRepo.GetWithItems(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for checkout: %w", err)
	}
	if len(cart.CartItems) == 0 {
		return nil, ErrCartEmpty
	}

	cartID := cart.ID
	order := &models.Order{
		CartID:   &cartID,
		UserID:   cart.UserID,
		FullName: details.FullName,
		Email:    details.Email,
		Address:  details.Address,
		City:     details.City,
		Postcode: details.Postcode,
		Total:    cart.Total(),
		Status:   models.OrderStatusPending,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cartRepo.Deactivate(ctx, tx, cart.ID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to deactivate cart: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}

	log.Printf("checkout: order %s created from cart %s, total %s", order.ID, cart.ID, order.Total.StringFixed(2))
	return order, nil
}
