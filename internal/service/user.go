package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/miteshrathod09/sick-fits/internal/model"
	"github.com/miteshrathod09/sick-fits/internal/repository"
)

// CheckPermission is the permission guard: it fails closed when no user is
// present or when the user's permission set shares nothing with needed.
func CheckPermission(user *model.User, needed []string) error {
	if user == nil {
		return ErrNotAuthenticated
	}

	for _, p := range user.Permissions {
		if slices.Contains(needed, p) {
			return nil
		}
	}

	return fmt.Errorf("%w: you need one of %v, you have %v", ErrNotAuthorized, needed, user.Permissions)
}

type UserService interface {
	ByID(ctx context.Context, id string) (*model.User, error)
	// Users lists every account; caller needs ADMIN or PERMISSIONUPDATE.
	Users(ctx context.Context, caller *model.User) ([]*model.User, error)
	// UpdatePermissions replaces the target's permission set wholesale.
	UpdatePermissions(ctx context.Context, caller *model.User, targetID string, permissions []string) (*model.User, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userServiceImpl) ByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}

func (s *userServiceImpl) Users(ctx context.Context, caller *model.User) ([]*model.User, error) {
	if err := CheckPermission(caller, []string{model.PermissionAdmin, model.PermissionPermissionUpdate}); err != nil {
		return nil, err
	}

	return s.userRepo.FindAll(ctx)
}

func (s *userServiceImpl) UpdatePermissions(ctx context.Context, caller *model.User, targetID string, permissions []string) (*model.User, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}
	if err := CheckPermission(caller, []string{model.PermissionAdmin, model.PermissionPermissionUpdate}); err != nil {
		return nil, err
	}

	for _, p := range permissions {
		if !slices.Contains(model.AllPermissions, p) {
			return nil, fmt.Errorf("%w: unknown permission %s", ErrValidation, p)
		}
	}

	if err := s.userRepo.SetPermissions(ctx, targetID, permissions); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, targetID)
		}
		return nil, fmt.Errorf("set permissions: %w", err)
	}

	s.logger.Info().
		Str("caller_id", caller.ID).
		Str("target_id", targetID).
		Strs("permissions", permissions).
		Msg("permissions updated")

	return s.ByID(ctx, targetID)
}
