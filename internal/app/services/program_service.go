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

// ProgramService defines degree program administration logic
type ProgramService interface {
	Create(ctx context.Context, req *dto.ProgramRequest) (*models.Program, error)
	GetAll(ctx context.Context, departmentID *int64) ([]*models.Program, error)
	GetByID(ctx context.Context, id int64) (*models.Program, error)
	Update(ctx context.Context, id int64, req *dto.ProgramRequest) (*models.Program, error)
	Delete(ctx context.Context, id int64) error
}

type programServiceImpl struct {
	programRepo *repositories.ProgramRepository
}

// NewProgramService creates a new program service
func NewProgramService(programRepo *repositories.ProgramRepository) ProgramService {
	return &programServiceImpl{programRepo: programRepo}
}

func (s *programServiceImpl) Create(ctx context.Context, req *dto.ProgramRequest) (*models.Program, error) {
	program := &models.Program{
		Name:          req.Name,
		DepartmentID:  req.DepartmentID,
		DurationYears: req.DurationYears,
	}
	if err := s.programRepo.Create(ctx, program); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Program with this name already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced department does not exist")
		}
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	return program, nil
}

func (s *programServiceImpl) GetAll(ctx context.Context, departmentID *int64) ([]*models.Program, error) {
	return s.programRepo.GetAll(ctx, departmentID)
}

func (s *programServiceImpl) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, apperrors.NewResourceNotFoundError("Program not found")
	}
	return program, nil
}

func (s *programServiceImpl) Update(ctx context.Context, id int64, req *dto.ProgramRequest) (*models.Program, error) {
	program := &models.Program{
		ID:            id,
		Name:          req.Name,
		DepartmentID:  req.DepartmentID,
		DurationYears: req.DurationYears,
	}
	affected, err := s.programRepo.Update(ctx, program)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Program with this name already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced department does not exist")
		}
		return nil, fmt.Errorf("failed to update program: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Program not found")
	}
	return program, nil
}

func (s *programServiceImpl) Delete(ctx context.Context, id int64) error {
	affected, err := s.programRepo.Delete(ctx, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceInUseError("Program is in use and cannot be deleted")
		}
		return fmt.Errorf("failed to delete program: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Program not found")
	}
	return nil
}
