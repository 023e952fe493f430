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
)

// CompanyService defines company and company type administration logic
type CompanyService interface {
	CreateType(ctx context.Context, req *dto.CompanyTypeRequest) (*models.CompanyType, error)
	GetAllTypes(ctx context.Context) ([]*models.CompanyType, error)
	UpdateType(ctx context.Context, id int64, req *dto.CompanyTypeRequest) (*models.CompanyType, error)
	DeleteType(ctx context.Context, id int64) error

	Create(ctx context.Context, req *dto.CompanyRequest) (*models.Company, error)
	GetAll(ctx context.Context, typeID *int64, search string, page, size int) ([]*models.Company, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	Update(ctx context.Context, id int64, req *dto.CompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, id int64) error
}

type companyServiceImpl struct {
	companyRepo *repositories.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo *repositories.CompanyRepository) CompanyService {
	return &companyServiceImpl{companyRepo: companyRepo}
}

func (s *companyServiceImpl) CreateType(ctx context.Context, req *dto.CompanyTypeRequest) (*models.CompanyType, error) {
	companyType := &models.CompanyType{Name: req.Name}
	if err := s.companyRepo.CreateType(ctx, companyType); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Company type already exists")
		}
		return nil, fmt.Errorf("failed to create company type: %w", err)
	}
	return companyType, nil
}

func (s *companyServiceImpl) GetAllTypes(ctx context.Context) ([]*models.CompanyType, error) {
	return s.companyRepo.GetAllTypes(ctx)
}

func (s *companyServiceImpl) UpdateType(ctx context.Context, id int64, req *dto.CompanyTypeRequest) (*models.CompanyType, error) {
	companyType := &models.CompanyType{ID: id, Name: req.Name}
	affected, err := s.companyRepo.UpdateType(ctx, companyType)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Company type already exists")
		}
		return nil, fmt.Errorf("failed to update company type: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Company type not found")
	}
	return companyType, nil
}

func (s *companyServiceImpl) DeleteType(ctx context.Context, id int64) error {
	affected, err := s.companyRepo.DeleteType(ctx, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceInUseError("Company type is in use and cannot be deleted")
		}
		return fmt.Errorf("failed to delete company type: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Company type not found")
	}
	return nil
}

func (s *companyServiceImpl) Create(ctx context.Context, req *dto.CompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:          req.Name,
		CompanyTypeID: req.CompanyTypeID,
		Website:       req.Website,
		ContactEmail:  req.ContactEmail,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Company with this name already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced company type does not exist")
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return s.GetByID(ctx, company.ID)
}

func (s *companyServiceImpl) GetAll(ctx context.Context, typeID *int64, search string, page, size int) ([]*models.Company, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.companyRepo.GetAll(ctx, typeID, search, offset, limit)
}

func (s *companyServiceImpl) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperrors.NewResourceNotFoundError("Company not found")
	}
	return company, nil
}

func (s *companyServiceImpl) Update(ctx context.Context, id int64, req *dto.CompanyRequest) (*models.Company, error) {
	company := &models.Company{
		ID:            id,
		Name:          req.Name,
		CompanyTypeID: req.CompanyTypeID,
		Website:       req.Website,
		ContactEmail:  req.ContactEmail,
	}
	affected, err := s.companyRepo.Update(ctx, company)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Company with this name already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced company type does not exist")
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Company not found")
	}
	return s.GetByID(ctx, id)
}

func (s *companyServiceImpl) Delete(ctx context.Context, id int64) error {
	affected, err := s.companyRepo.Delete(ctx, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceInUseError("Company has drives or internships and cannot be deleted")
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Company not found")
	}
	return nil
}
