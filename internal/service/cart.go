package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/miteshrathod09/sick-fits/internal/model"
	"github.com/miteshrathod09/sick-fits/internal/repository"
)

type CartService interface {
	// AddToCart increments the quantity of an existing (user, item) line or
	// starts one at quantity 1.
	AddToCart(ctx context.Context, caller *model.User, itemID string) (*model.CartItem, error)
	// RemoveFromCart deletes a line the caller owns.
	RemoveFromCart(ctx context.Context, caller *model.User, cartItemID string) (*model.CartItem, error)
	// Cart returns the caller's current cart with item details.
	Cart(ctx context.Context, userID string) ([]*model.CartItem, error)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
	logger   zerolog.Logger
}

func NewCartService(
	cartRepo repository.CartRepository,
	itemRepo repository.ItemRepository,
	logger zerolog.Logger,
) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (s *cartServiceImpl) AddToCart(ctx context.Context, caller *model.User, itemID string) (*model.CartItem, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item %s", ErrNotFound, itemID)
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	existing, err := s.cartRepo.FindByUserAndItem(ctx, caller.ID, itemID)
	if err == nil {
		if err := s.cartRepo.IncrementQuantity(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("increment cart quantity: %w", err)
		}
		return s.cartRepo.FindByID(ctx, existing.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	cartItem := &model.CartItem{
		ID:       uuid.NewString(),
		UserID:   caller.ID,
		ItemID:   itemID,
		Quantity: 1,
	}
	if err := s.cartRepo.Create(ctx, cartItem); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}

	return s.cartRepo.FindByID(ctx, cartItem.ID)
}

func (s *cartServiceImpl) RemoveFromCart(ctx context.Context, caller *model.User, cartItemID string) (*model.CartItem, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	cartItem, err := s.cartRepo.FindByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no cart item found", ErrNotFound)
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	if cartItem.UserID != caller.ID {
		return nil, fmt.Errorf("%w: this is not your cart item", ErrNotAuthorized)
	}

	if err := s.cartRepo.Delete(ctx, cartItemID); err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}

	return cartItem, nil
}

func (s *cartServiceImpl) Cart(ctx context.Context, userID string) ([]*model.CartItem, error) {
	return s.cartRepo.FindByUser(ctx, userID)
}
