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

type ItemInput struct {
	Title       string
	Description string
	Price       int64
	Image       string
	LargeImage  string
}

// ItemUpdates carries the mutable item fields; nil means "leave unchanged".
// The item id is never an update target.
type ItemUpdates struct {
	Title       *string
	Description *string
	Price       *int64
}

type ItemService interface {
	Create(ctx context.Context, caller *model.User, input ItemInput) (*model.Item, error)
	// Update requires a signed-in caller but does not check ownership; any
	// authenticated user may edit any item by id.
	Update(ctx context.Context, caller *model.User, id string, updates ItemUpdates) (*model.Item, error)
	// Delete permits the owner, or a caller holding ADMIN or ITEMDELETE.
	Delete(ctx context.Context, caller *model.User, id string) (*model.Item, error)
	Item(ctx context.Context, id string) (*model.Item, error)
	Items(ctx context.Context, filter repository.ItemFilter) ([]*model.Item, error)
	Count(ctx context.Context, filter repository.ItemFilter) (int64, error)
}

type itemServiceImpl struct {
	itemRepo repository.ItemRepository
	logger   zerolog.Logger
}

func NewItemService(itemRepo repository.ItemRepository, logger zerolog.Logger) ItemService {
	return &itemServiceImpl{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (s *itemServiceImpl) Create(ctx context.Context, caller *model.User, input ItemInput) (*model.Item, error) {
	if caller == nil {
		return nil, fmt.Errorf("%w: you must be logged in to create an item", ErrNotAuthenticated)
	}
	if input.Title == "" || input.Price < 0 {
		return nil, fmt.Errorf("%w: an item needs a title and a non-negative price", ErrValidation)
	}

	item := &model.Item{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		LargeImage:  input.LargeImage,
		UserID:      caller.ID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

func (s *itemServiceImpl) Update(ctx context.Context, caller *model.User, id string, updates ItemUpdates) (*model.Item, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	columns := map[string]interface{}{}
	if updates.Title != nil {
		columns["title"] = *updates.Title
	}
	if updates.Description != nil {
		columns["description"] = *updates.Description
	}
	if updates.Price != nil {
		if *updates.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
		}
		columns["price"] = *updates.Price
	}

	if len(columns) > 0 {
		if err := s.itemRepo.Update(ctx, id, columns); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: item %s", ErrNotFound, id)
			}
			return nil, fmt.Errorf("update item: %w", err)
		}
	}

	return s.Item(ctx, id)
}

func (s *itemServiceImpl) Delete(ctx context.Context, caller *model.User, id string) (*model.Item, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	item, err := s.Item(ctx, id)
	if err != nil {
		return nil, err
	}

	ownsItem := item.UserID == caller.ID
	hasPermission := CheckPermission(caller, []string{model.PermissionAdmin, model.PermissionItemDelete}) == nil
	if !ownsItem && !hasPermission {
		return nil, fmt.Errorf("%w: you cannot delete this item", ErrNotAuthorized)
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete item: %w", err)
	}

	s.logger.Info().Str("item_id", id).Str("caller_id", caller.ID).Msg("item deleted")
	return item, nil
}

func (s *itemServiceImpl) Item(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	return item, nil
}

func (s *itemServiceImpl) Items(ctx context.Context, filter repository.ItemFilter) ([]*model.Item, error) {
	return s.itemRepo.FindMany(ctx, filter)
}

func (s *itemServiceImpl) Count(ctx context.Context, filter repository.ItemFilter) (int64, error) {
	return s.itemRepo.Count(ctx, filter)
}
