package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/quintory/storefront/app/models"
	"github.com/quintory/storefront/app/repositories"
	"gorm.io/gorm"
)

// ErrNoIdentity means a cart operation was attempted without a user ID
// or session key; the identity middleware should make this impossible.
var ErrNoIdentity = errors.New("no identity to scope a cart by")

// ErrInvalidQuantity rejects adds with a quantity below one. Zero and
// negative quantities only make sense on update, where they mean
// removal.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(cartRepo repositories.CartRepositoryImpl, cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// ResolveCart returns the single active cart for the identity, creating
// an empty one if none exists. The (identity, active) unique indexes
// make the create half of find-or-create safe against a concurrent
// first request: the loser of the race gets a duplicate-key error and
// re-reads the winner's cart.
func (s *CartService) ResolveCart(ctx context.Context, identity models.Identity) (*models.Cart, error) {
	if identity.Empty() {
		return nil, ErrNoIdentity
	}

	cart, err := s.findActive(ctx, identity)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up active cart: %w", err)
	}

	cart = &models.Cart{Active: models.ActiveFlag()}
	if identity.Anonymous() {
		key := identity.SessionKey
		cart.SessionKey = &key
	} else {
		uid := identity.UserID
		cart.UserID = &uid
	}

	if err := s.cartRepo.Create(ctx, cart); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, findErr := s.findActive(ctx, identity)
			if findErr != nil {
				return nil, fmt.Errorf("failed to re-read cart after losing create race: %w", findErr)
			}
			return winner, nil
		}
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return cart, nil
}

// GetCart resolves the identity's cart and loads its line items with
// their products, so the derived total can be computed.
func (s *CartService) GetCart(ctx context.Context, identity models.Identity) (*models.Cart, error) {
	cart, err := s.ResolveCart(ctx, identity)
	if err != nil {
		return nil, err
	}
	detailed, err := s.cartRepo.GetWithItems(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}
	return detailed, nil
}

// AddItem puts qty units of a product into the cart. The product must
// exist and be available, otherwise ErrNotFound surfaces. A repeat add
// of the same product increments the existing line item. Quantities
// below one are rejected so a stored line item is always positive.
func (s *CartService) AddItem(ctx context.Context, cart *models.Cart, productID string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	product, err := s.productRepo.GetAvailableByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return repositories.ErrNotFound
		}
		return fmt.Errorf("failed to look up product %s: %w", productID, err)
	}

	existing, err := s.cartItemRepo.GetByCartAndProduct(ctx, cart.ID, product.ID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if existing != nil {
		existing.Qty += qty
		if err := s.cartItemRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}
		return nil
	}

	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Qty:       qty,
	}
	if err := s.cartItemRepo.Add(ctx, item); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// UpdateItem overwrites a line item's quantity. A non-positive quantity
// means removal. The item must belong to the given cart.
func (s *CartService) UpdateItem(ctx context.Context, cart *models.Cart, itemID string, qty int) error {
	item, err := s.cartItemRepo.GetByIDForCart(ctx, itemID, cart.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return repositories.ErrNotFound
		}
		return fmt.Errorf("failed to look up cart item: %w", err)
	}

	if qty <= 0 {
		if err := s.cartItemRepo.Delete(ctx, item); err != nil {
			return fmt.Errorf("failed to delete cart item: %w", err)
		}
		return nil
	}

	item.Qty = qty
	if err := s.cartItemRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", err)
	}
	return nil
}

// RemoveItem deletes a line item from the cart unconditionally.
func (s *CartService) RemoveItem(ctx context.Context, cart *models.Cart, itemID string) error {
	item, err := s.cartItemRepo.GetByIDForCart(ctx, itemID, cart.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return repositories.ErrNotFound
		}
		return fmt.Errorf("failed to look up cart item: %w", err)
	}

	if err := s.cartItemRepo.Delete(ctx, item); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// ItemCount is the number of line items in the identity's active cart,
// zero when the identity has no cart yet. Used by the navbar badge; it
// never creates a cart.
func (s *CartService) ItemCount(ctx context.Context, identity models.Identity) (int, error) {
	cart, err := s.findActive(ctx, identity)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) || errors.Is(err, ErrNoIdentity) {
			return 0, nil
		}
		return 0, err
	}
	return s.cartRepo.GetItemCount(ctx, cart.ID)
}

func (s *CartService) findActive(ctx context.Context, identity models.Identity) (*models.Cart, error) {
	if identity.Empty() {
		return nil, ErrNoIdentity
	}
	if identity.Anonymous() {
		return s.cartRepo.FindActiveBySessionKey(ctx, identity.SessionKey)
	}
	return s.cartRepo.FindActiveByUser(ctx, identity.UserID)
}
