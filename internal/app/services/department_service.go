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

// DepartmentService defines department administration logic
type DepartmentService interface {
	Create(ctx context.Context, req *dto.DepartmentRequest) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentServiceImpl struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) DepartmentService {
	return &departmentServiceImpl{departmentRepo: departmentRepo}
}

func (s *departmentServiceImpl) Create(ctx context.Context, req *dto.DepartmentRequest) (*models.Department, error) {
	department := &models.Department{Name: req.Name, Code: req.Code}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Department with this name or code already exists")
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return department, nil
}

func (s *departmentServiceImpl) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

func (s *departmentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperrors.NewResourceNotFoundError("Department not found")
	}
	return department, nil
}

func (s *departmentServiceImpl) Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*models.Department, error) {
	department := &models.Department{ID: id, Name: req.Name, Code: req.Code}
	affected, err := s.departmentRepo.Update(ctx, department)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Department with this name or code already exists")
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Department not found")
	}
	return department, nil
}

func (s *departmentServiceImpl) Delete(ctx context.Context, id int64) error {
	affected, err := s.departmentRepo.Delete(ctx, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceInUseError("Department is in use and cannot be deleted")
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Department not found")
	}
	return nil
}
