package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/miteshrathod09/sick-fits/internal/model"
)

type CartRepository interface {
	Create(ctx context.Context, cartItem *model.CartItem) error
	FindByID(ctx context.Context, id string) (*model.CartItem, error)
	FindByUserAndItem(ctx context.Context, userID, itemID string) (*model.CartItem, error)
	// FindByUser returns the user's cart with item details preloaded.
	FindByUser(ctx context.Context, userID string) ([]*model.CartItem, error)
	IncrementQuantity(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []string) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Create(ctx context.Context, cartItem *model.CartItem) error {
	return r.db.WithContext(ctx).Create(cartItem).Error
}

func (r *cartRepoImpl) FindByID(ctx context.Context, id string) (*model.CartItem, error) {
	var cartItem model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("id = ?", id).
		First(&cartItem).Error

	if err != nil {
		return nil, err
	}

	return &cartItem, nil
}

func (r *cartRepoImpl) FindByUserAndItem(ctx context.Context, userID, itemID string) (*model.CartItem, error) {
	var cartItem model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&cartItem).Error

	if err != nil {
		return nil, err
	}

	return &cartItem, nil
}

func (r *cartRepoImpl) FindByUser(ctx context.Context, userID string) ([]*model.CartItem, error) {
	var cartItems []*model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&cartItems).Error

	if err != nil {
		return nil, err
	}

	return cartItems, nil
}

func (r *cartRepoImpl) IncrementQuantity(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", 1)).Error
}

func (r *cartRepoImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartItem{}).Error
}

func (r *cartRepoImpl) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []string) error {
	return tx.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.CartItem{}).Error
}
