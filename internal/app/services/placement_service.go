package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/pkg/apperrors"
	"github.com/asmit/placenet/internal/pkg/dberrors"
	"github.com/asmit/placenet/internal/pkg/filestorage"
	"github.com/asmit/placenet/internal/pkg/helpers"
	"github.com/asmit/placenet/internal/pkg/logger"
)

type driveSource interface {
	GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error)
}

type applicationStore interface {
	Create(ctx context.Context, application *models.PlacementApplication) error
	GetByDriveAndStudent(ctx context.Context, driveID, studentID int64) (*models.PlacementApplication, error)
	ListDriveIDsByStudent(ctx context.Context, studentID int64) ([]int64, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.PlacementApplication, error)
	ListByDrive(ctx context.Context, driveID int64, offset, limit int) ([]*models.PlacementApplication, int64, error)
	UpdateStatus(ctx context.Context, driveID, studentID int64, status models.ApplicationStatus, jobRole, place, offerLetter string) (int64, error)
}

// PlacementService defines the application lifecycle logic
type PlacementService interface {
	Apply(ctx context.Context, studentID, driveID int64) (*models.PlacementApplication, error)
	ListAppliedDriveIDs(ctx context.Context, studentID int64) ([]int64, error)
	MyPlacements(ctx context.Context, studentID int64) ([]*models.PlacementApplication, error)
	ListByDrive(ctx context.Context, driveID int64, page, size int) ([]*models.PlacementApplication, int64, error)
	UpdateStatus(ctx context.Context, driveID, studentID int64, req *dto.UpdatePlacementStatusRequest, offerLetter *multipart.FileHeader) (*models.PlacementApplication, error)
}

type placementServiceImpl struct {
	driveRepo       driveSource
	applicationRepo applicationStore
	storage         filestorage.FileStorage
}

// NewPlacementService creates a new placement service
func NewPlacementService(driveRepo driveSource, applicationRepo applicationStore, storage filestorage.FileStorage) PlacementService {
	return &placementServiceImpl{
		driveRepo:       driveRepo,
		applicationRepo: applicationRepo,
		storage:         storage,
	}
}

// Apply submits a student's application to an active drive. The drive's CTC
// is copied onto the application so later drive edits never rewrite an
// applicant's recorded package. Inactive drives are indistinguishable from
// missing ones.
func (s *placementServiceImpl) Apply(ctx context.Context, studentID, driveID int64) (*models.PlacementApplication, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, fmt.Errorf("failed to load drive: %w", err)
	}
	if drive == nil || !drive.IsActive {
		return nil, apperrors.NewResourceNotFoundError("Drive not found")
	}

	application := &models.PlacementApplication{
		StudentID: studentID,
		DriveID:   driveID,
		Status:    models.ApplicationPending,
		CTC:       drive.CTC,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Already applied to this drive")
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	logger.Info().Int64("student_id", studentID).Int64("drive_id", driveID).Msg("Application submitted")
	application.Drive = drive
	return application, nil
}

// ListAppliedDriveIDs returns the drive IDs a student has applied to
func (s *placementServiceImpl) ListAppliedDriveIDs(ctx context.Context, studentID int64) ([]int64, error) {
	return s.applicationRepo.ListDriveIDsByStudent(ctx, studentID)
}

// MyPlacements returns a student's applications, newest first, with stored
// offer letter paths resolved to public URLs
func (s *placementServiceImpl) MyPlacements(ctx context.Context, studentID int64) ([]*models.PlacementApplication, error) {
	applications, err := s.applicationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	for _, application := range applications {
		if application.OfferLetter != "" {
			application.OfferLetter = s.storage.FileURL(application.OfferLetter)
		}
	}
	return applications, nil
}

// ListByDrive returns all applications to a drive for the admin view
func (s *placementServiceImpl) ListByDrive(ctx context.Context, driveID int64, page, size int) ([]*models.PlacementApplication, int64, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load drive: %w", err)
	}
	if drive == nil {
		return nil, 0, apperrors.NewResourceNotFoundError("Drive not found")
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	applications, total, err := s.applicationRepo.ListByDrive(ctx, driveID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	for _, application := range applications {
		if application.OfferLetter != "" {
			application.OfferLetter = s.storage.FileURL(application.OfferLetter)
		}
	}
	return applications, total, nil
}

// UpdateStatus resolves one application. Selecting a student requires a role
// and place and may attach an offer letter; any other outcome force-clears
// all three so stale selection data never survives a reversal.
func (s *placementServiceImpl) UpdateStatus(ctx context.Context, driveID, studentID int64, req *dto.UpdatePlacementStatusRequest, offerLetter *multipart.FileHeader) (*models.PlacementApplication, error) {
	application, err := s.applicationRepo.GetByDriveAndStudent(ctx, driveID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	if application == nil {
		return nil, apperrors.NewResourceNotFoundError("Application not found")
	}

	var status models.ApplicationStatus
	switch req.IsSelected {
	case dto.SelectionYes:
		status = models.ApplicationSelected
	case dto.SelectionNo:
		status = models.ApplicationRejected
	default:
		status = models.ApplicationPending
	}

	jobRole, place, offerLetterPath := "", "", ""
	oldOfferLetter := application.OfferLetter

	if status == models.ApplicationSelected {
		if req.Role == "" || req.Place == "" {
			return nil, apperrors.NewValidationError("Role and place are required when a student is selected")
		}
		jobRole = req.Role
		place = req.Place
		offerLetterPath = oldOfferLetter

		if offerLetter != nil {
			if err := filestorage.ValidateContentType(offerLetter); err != nil {
				return nil, apperrors.NewValidationError(err.Error())
			}
			savedPath, err := s.storage.SaveFile(offerLetter, filestorage.OfferLetterDir)
			if err != nil {
				return nil, fmt.Errorf("failed to save offer letter: %w", err)
			}
			offerLetterPath = savedPath
		}
	}

	affected, err := s.applicationRepo.UpdateStatus(ctx, driveID, studentID, status, jobRole, place, offerLetterPath)
	if err != nil {
		if offerLetterPath != "" && offerLetterPath != oldOfferLetter {
			if delErr := s.storage.DeleteFile(offerLetterPath); delErr != nil {
				logger.Warn().Err(delErr).Str("path", offerLetterPath).Msg("Failed to clean up offer letter")
			}
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Application not found")
	}

	// The stored letter is orphaned once replaced or once the student is no
	// longer selected. Removal failures only cost disk space.
	if oldOfferLetter != "" && oldOfferLetter != offerLetterPath {
		if err := s.storage.DeleteFile(oldOfferLetter); err != nil {
			logger.Warn().Err(err).Str("path", oldOfferLetter).Msg("Failed to delete old offer letter")
		}
	}

	logger.Info().Int64("drive_id", driveID).Int64("student_id", studentID).
		Str("status", string(status)).Msg("Application status updated")

	return s.applicationRepo.GetByDriveAndStudent(ctx, driveID, studentID)
}
