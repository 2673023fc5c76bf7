package repositories

import (
	"context"
	"errors"

	"github.com/quintory/storefront/app/models"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	Create(ctx context.Context, cart *models.Cart) error
	FindActiveByUser(ctx context.Context, userID string) (*models.Cart, error)
	FindActiveBySessionKey(ctx context.Context, sessionKey string) (*models.Cart, error)
	GetWithItems(ctx context.Context, cartID string) (*models.Cart, error)
	GetItemCount(ctx context.Context, cartID string) (int, error)
	Deactivate(ctx context.Context, tx *gorm.DB, cartID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

func (r *cartRepository) Create(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) FindActiveByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) FindActiveBySessionKey(ctx context.Context, sessionKey string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where("session_key = ? AND active = ?", sessionKey, true).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("CartItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.added_at ASC")
		}).
		Preload("CartItems.Product").
		First(&cart, "id = ?", cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetItemCount(ctx context.Context, cartID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ?", cartID).
		Count(&count).Error
	return int(count), err
}

// Deactivate retires a cart after checkout by nulling its active flag,
// freeing the (identity, active) unique slot for the next cart. Runs on
// the caller's transaction so it commits together with the order row.
func (r *cartRepository) Deactivate(ctx context.Context, tx *gorm.DB, cartID string) error {
	return tx.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("active", nil).Error
}
