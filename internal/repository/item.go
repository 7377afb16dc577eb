package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/miteshrathod09/sick-fits/internal/model"
)

// ItemFilter narrows and pages item listings. A nil field means "no
// constraint"; Search matches title or description, case-insensitively on
// collations that are.
type ItemFilter struct {
	Search *string
	Skip   *int32
	First  *int32
}

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id string) (*model.Item, error)
	FindMany(ctx context.Context, filter ItemFilter) ([]*model.Item, error)
	Count(ctx context.Context, filter ItemFilter) (int64, error)
	// Update applies the given column updates; the id is the row key only and
	// is never part of updates.
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type itemRepoImpl struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepoImpl{
		db: db,
	}
}

func (r *itemRepoImpl) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepoImpl) FindByID(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *itemRepoImpl) FindMany(ctx context.Context, filter ItemFilter) ([]*model.Item, error) {
	query := applyItemFilter(r.db.WithContext(ctx), filter)

	if filter.Skip != nil {
		query = query.Offset(int(*filter.Skip))
	}
	if filter.First != nil {
		query = query.Limit(int(*filter.First))
	}

	var items []*model.Item
	err := query.
		Order("created_at DESC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepoImpl) Count(ctx context.Context, filter ItemFilter) (int64, error) {
	var count int64
	err := applyItemFilter(r.db.WithContext(ctx).Model(&model.Item{}), filter).
		Count(&count).Error

	return count, err
}

func (r *itemRepoImpl) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *itemRepoImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Item{}).Error
}

func applyItemFilter(query *gorm.DB, filter ItemFilter) *gorm.DB {
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	return query
}
