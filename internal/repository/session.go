package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/miteshrathod09/sick-fits/internal/model"
)

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	Find(ctx context.Context, tokenID string) (*model.Session, error)
	Revoke(ctx context.Context, tokenID string) error
}

type sessionRepoImpl struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepoImpl{db: db}
}

func (r *sessionRepoImpl) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepoImpl) Find(ctx context.Context, tokenID string) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		First(&session).Error

	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepoImpl) Revoke(ctx context.Context, tokenID string) error {
	return r.db.WithContext(ctx).Model(&model.Session{}).
		Where("token_id = ?", tokenID).
		Where("revoked_at IS NULL").
		Update("revoked_at", time.Now()).Error
}
