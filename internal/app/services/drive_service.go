package services

import (
	"context"
	"fmt"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/repositories"
	"github.com/asmit/placenet/internal/pkg/apperrors"
	"github.com/asmit/placenet/internal/pkg/dberrors"
	"github.com/asmit/placenet/internal/pkg/helpers"
	"github.com/asmit/placenet/internal/pkg/logger"
)

// DriveService defines placement drive administration logic
type DriveService interface {
	Create(ctx context.Context, req *dto.CreateDriveRequest) (*models.PlacementDrive, error)
	GetAll(ctx context.Context, sessionID *int64, activeOnly bool, page, size int) ([]*models.PlacementDrive, int64, error)
	GetByID(ctx context.Context, id int64, activeOnly bool) (*models.PlacementDrive, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDriveRequest) (*models.PlacementDrive, error)
	Delete(ctx context.Context, id int64) error
}

type driveServiceImpl struct {
	driveRepo *repositories.DriveRepository
}

// NewDriveService creates a new drive service
func NewDriveService(driveRepo *repositories.DriveRepository) DriveService {
	return &driveServiceImpl{driveRepo: driveRepo}
}

// Create creates a placement drive. New drives default to active.
func (s *driveServiceImpl) Create(ctx context.Context, req *dto.CreateDriveRequest) (*models.PlacementDrive, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	drive := &models.PlacementDrive{
		SessionID: req.SessionID,
		CompanyID: req.CompanyID,
		JobRole:   req.JobRole,
		CTC:       req.CTC,
		Location:  req.Location,
		DriveDate: req.DriveDate,
		IsActive:  isActive,
	}

	if err := s.driveRepo.Create(ctx, drive); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced session or company does not exist")
		}
		return nil, fmt.Errorf("failed to create drive: %w", err)
	}

	logger.Info().Int64("drive_id", drive.ID).Str("job_role", drive.JobRole).Msg("Drive created")
	return s.driveRepo.GetByID(ctx, drive.ID)
}

// GetAll lists drives. Students see active drives only; administrators see
// everything.
func (s *driveServiceImpl) GetAll(ctx context.Context, sessionID *int64, activeOnly bool, page, size int) ([]*models.PlacementDrive, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.driveRepo.GetAll(ctx, sessionID, activeOnly, offset, limit)
}

// GetByID returns a drive. With activeOnly set, an inactive drive reads as
// missing.
func (s *driveServiceImpl) GetByID(ctx context.Context, id int64, activeOnly bool) (*models.PlacementDrive, error) {
	drive, err := s.driveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if drive == nil || (activeOnly && !drive.IsActive) {
		return nil, apperrors.NewResourceNotFoundError("Drive not found")
	}
	return drive, nil
}

// Update rewrites a drive. Applications keep their snapshotted CTC.
func (s *driveServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateDriveRequest) (*models.PlacementDrive, error) {
	drive := &models.PlacementDrive{
		ID:        id,
		SessionID: req.SessionID,
		CompanyID: req.CompanyID,
		JobRole:   req.JobRole,
		CTC:       req.CTC,
		Location:  req.Location,
		DriveDate: req.DriveDate,
		IsActive:  *req.IsActive,
	}

	affected, err := s.driveRepo.Update(ctx, drive)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced session or company does not exist")
		}
		return nil, fmt.Errorf("failed to update drive: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Drive not found")
	}

	return s.driveRepo.GetByID(ctx, id)
}

// Delete removes a drive. Drives with applications are kept for history and
// cannot be deleted.
func (s *driveServiceImpl) Delete(ctx context.Context, id int64) error {
	affected, err := s.driveRepo.Delete(ctx, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceInUseError("Drive has applications and cannot be deleted")
		}
		return fmt.Errorf("failed to delete drive: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Drive not found")
	}
	return nil
}
