package services

import (
	"context"
	"fmt"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/repositories"
	"github.com/asmit/placenet/internal/pkg/apperrors"
	"github.com/asmit/placenet/internal/pkg/dberrors"
)

// AcademicService defines academic year and session administration logic
type AcademicService interface {
	CreateYear(ctx context.Context, req *dto.AcademicYearRequest) (*models.AcademicYear, error)
	GetAllYears(ctx context.Context) ([]*models.AcademicYear, error)
	GetYearByID(ctx context.Context, id int64) (*models.AcademicYear, error)
	UpdateYear(ctx context.Context, id int64, req *dto.AcademicYearRequest) (*models.AcademicYear, error)
	DeleteYear(ctx context.Context, id int64) error

	CreateSession(ctx context.Context, req *dto.AcademicSessionRequest) (*models.AcademicSession, error)
	GetAllSessions(ctx context.Context) ([]*models.AcademicSession, error)
	GetSessionByID(ctx context.Context, id int64) (*models.AcademicSession, error)
	UpdateSession(ctx context.Context, id int64, req *dto.AcademicSessionRequest) (*models.AcademicSession, error)
	DeleteSession(ctx context.Context, id int64) error
}

type academicServiceImpl struct {
	academicRepo *repositories.AcademicRepository
}

// NewAcademicService creates a new academic service
func NewAcademicService(academicRepo *repositories.AcademicRepository) AcademicService {
	return &academicServiceImpl{academicRepo: academicRepo}
}

func (s *academicServiceImpl) CreateYear(ctx context.Context, req *dto.AcademicYearRequest) (*models.AcademicYear, error) {
	year := &models.AcademicYear{Year: req.Year}
	if err := s.academicRepo.CreateYear(ctx, year); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic year already exists")
		}
		return nil, fmt.Errorf("failed to create academic year: %w", err)
	}
	return year, nil
}

func (s *academicServiceImpl) GetAllYears(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.academicRepo.GetAllYears(ctx)
}

func (s *academicServiceImpl) GetYearByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	year, err := s.academicRepo.GetYearByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if year == nil {
		return nil, apperrors.NewResourceNotFoundError("Academic year not found")
	}
	return year, nil
}

func (s *academicServiceImpl) UpdateYear(ctx context.Context, id int64, req *dto.AcademicYearRequest) (*models.AcademicYear, error) {
	year := &models.AcademicYear{ID: id, Year: req.Year}
	affected, err := s.academicRepo.UpdateYear(ctx, year)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic year already exists")
		}
		return nil, fmt.Errorf("failed to update academic year: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Academic year not found")
	}
	return year, nil
}

func (s *academicServiceImpl) DeleteYear(ctx context.Context, id int64) error {
	affected, err := s.academicRepo.DeleteYear(ctx, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceInUseError("Academic year has sessions and cannot be deleted")
		}
		return fmt.Errorf("failed to delete academic year: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Academic year not found")
	}
	return nil
}

func (s *academicServiceImpl) CreateSession(ctx context.Context, req *dto.AcademicSessionRequest) (*models.AcademicSession, error) {
	session := &models.AcademicSession{Name: req.Name, YearID: req.YearID}
	if err := s.academicRepo.CreateSession(ctx, session); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic session already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced academic year does not exist")
		}
		return nil, fmt.Errorf("failed to create academic session: %w", err)
	}
	return session, nil
}

func (s *academicServiceImpl) GetAllSessions(ctx context.Context) ([]*models.AcademicSession, error) {
	return s.academicRepo.GetAllSessions(ctx)
}

func (s *academicServiceImpl) GetSessionByID(ctx context.Context, id int64) (*models.AcademicSession, error) {
	session, err := s.academicRepo.GetSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NewResourceNotFoundError("Academic session not found")
	}
	return session, nil
}

func (s *academicServiceImpl) UpdateSession(ctx context.Context, id int64, req *dto.AcademicSessionRequest) (*models.AcademicSession, error) {
	session := &models.AcademicSession{ID: id, Name: req.Name, YearID: req.YearID}
	affected, err := s.academicRepo.UpdateSession(ctx, session)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic session already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced academic year does not exist")
		}
		return nil, fmt.Errorf("failed to update academic session: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Academic session not found")
	}
	return session, nil
}

func (s *academicServiceImpl) DeleteSession(ctx context.Context, id int64) error {
	affected, err := s.academicRepo.DeleteSession(ctx, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceInUseError("Academic session is in use and cannot be deleted")
		}
		return fmt.Errorf("failed to delete academic session: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Academic session not found")
	}
	return nil
}
