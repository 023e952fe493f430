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

// RequirementService defines internship requirement administration logic
type RequirementService interface {
	Create(ctx context.Context, req *dto.RequirementRequest) (*models.InternshipRequirement, error)
	GetAll(ctx context.Context) ([]*models.InternshipRequirement, error)
	GetByID(ctx context.Context, id int64) (*models.InternshipRequirement, error)
	Update(ctx context.Context, id int64, req *dto.RequirementRequest) (*models.InternshipRequirement, error)
	Delete(ctx context.Context, id int64) error
}

type requirementServiceImpl struct {
	requirementRepo *repositories.RequirementRepository
}

// NewRequirementService creates a new requirement service
func NewRequirementService(requirementRepo *repositories.RequirementRepository) RequirementService {
	return &requirementServiceImpl{requirementRepo: requirementRepo}
}

// Create defines the required internship count for one (program, semester)
func (s *requirementServiceImpl) Create(ctx context.Context, req *dto.RequirementRequest) (*models.InternshipRequirement, error) {
	requirement := &models.InternshipRequirement{
		ProgramID:     req.ProgramID,
		Semester:      req.Semester,
		RequiredCount: req.RequiredCount,
	}

	if err := s.requirementRepo.Create(ctx, requirement); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Requirement for this program and semester already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced program does not exist")
		}
		return nil, fmt.Errorf("failed to create requirement: %w", err)
	}

	return requirement, nil
}

// GetAll lists all requirements with their programs
func (s *requirementServiceImpl) GetAll(ctx context.Context) ([]*models.InternshipRequirement, error) {
	return s.requirementRepo.GetAll(ctx)
}

// GetByID returns a requirement
func (s *requirementServiceImpl) GetByID(ctx context.Context, id int64) (*models.InternshipRequirement, error) {
	requirement, err := s.requirementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if requirement == nil {
		return nil, apperrors.NewResourceNotFoundError("Requirement not found")
	}
	return requirement, nil
}

// Update rewrites a requirement
func (s *requirementServiceImpl) Update(ctx context.Context, id int64, req *dto.RequirementRequest) (*models.InternshipRequirement, error) {
	requirement := &models.InternshipRequirement{
		ID:            id,
		ProgramID:     req.ProgramID,
		Semester:      req.Semester,
		RequiredCount: req.RequiredCount,
	}

	affected, err := s.requirementRepo.Update(ctx, requirement)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Requirement for this program and semester already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced program does not exist")
		}
		return nil, fmt.Errorf("failed to update requirement: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Requirement not found")
	}

	return requirement, nil
}

// Delete removes a requirement
func (s *requirementServiceImpl) Delete(ctx context.Context, id int64) error {
	affected, err := s.requirementRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete requirement: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Requirement not found")
	}
	return nil
}
