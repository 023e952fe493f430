package services

import (
	"context"
	"fmt"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/repositories"
	"github.com/asmit/placenet/internal/pkg/apperrors"
	"github.com/asmit/placenet/internal/pkg/helpers"
	"github.com/asmit/placenet/internal/pkg/logger"
)

// UserService defines account administration logic
type UserService interface {
	GetAccounts(ctx context.Context, status *models.AccountStatus, page, size int) ([]*models.User, int64, error)
	UpdateAccountStatus(ctx context.Context, userID int64, status models.AccountStatus) error
	GetAdminProfile(ctx context.Context, userID int64) (*models.AdminProfile, error)
	UpdateAdminProfile(ctx context.Context, userID int64, req *dto.UpdateAdminProfileRequest) (*models.AdminProfile, error)
}

type userServiceImpl struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// GetAccounts lists user accounts, optionally filtered by activation status
func (s *userServiceImpl) GetAccounts(ctx context.Context, status *models.AccountStatus, page, size int) ([]*models.User, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.userRepo.GetAll(ctx, status, offset, limit)
}

// UpdateAccountStatus resolves a pending registration to ACTIVE or REJECTED.
// Administrator accounts are never moderated through this path.
func (s *userServiceImpl) UpdateAccountStatus(ctx context.Context, userID int64, status models.AccountStatus) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return apperrors.NewResourceNotFoundError("User not found")
	}
	if user.Role != models.RoleStudent {
		return apperrors.NewForbiddenError("Only student accounts can be moderated")
	}

	affected, err := s.userRepo.UpdateStatus(ctx, userID, status)
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("User not found")
	}

	logger.Info().Int64("user_id", userID).Str("status", string(status)).Msg("Account status updated")
	return nil
}

// GetAdminProfile returns the admin profile of a user
func (s *userServiceImpl) GetAdminProfile(ctx context.Context, userID int64) (*models.AdminProfile, error) {
	profile, err := s.userRepo.GetAdminProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin profile: %w", err)
	}
	if profile == nil {
		return nil, apperrors.NewResourceNotFoundError("Admin profile not found")
	}
	return profile, nil
}

// UpdateAdminProfile updates an admin's designation and phone
func (s *userServiceImpl) UpdateAdminProfile(ctx context.Context, userID int64, req *dto.UpdateAdminProfileRequest) (*models.AdminProfile, error) {
	affected, err := s.userRepo.UpdateAdminProfile(ctx, userID, req.Designation, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to update admin profile: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Admin profile not found")
	}

	return s.GetAdminProfile(ctx, userID)
}
