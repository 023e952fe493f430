package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/pkg/apperrors"
	"github.com/asmit/placenet/internal/pkg/filestorage"
	"github.com/asmit/placenet/internal/pkg/helpers"
	"github.com/asmit/placenet/internal/pkg/logger"
)

type expenditureStore interface {
	Create(ctx context.Context, expenditure *models.Expenditure) error
	GetAll(ctx context.Context, offset, limit int) ([]*models.Expenditure, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Expenditure, error)
	Update(ctx context.Context, expenditure *models.Expenditure) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ExpenditureService defines placement-cell expense logic, including bill
// attachment lifecycle
type ExpenditureService interface {
	Create(ctx context.Context, req *dto.ExpenditureRequest, bill *multipart.FileHeader, createdBy int64) (*models.Expenditure, error)
	GetAll(ctx context.Context, page, size int) ([]*models.Expenditure, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Expenditure, error)
	Update(ctx context.Context, id int64, req *dto.ExpenditureRequest, bill *multipart.FileHeader) (*models.Expenditure, error)
	Delete(ctx context.Context, id int64) error
}

type expenditureServiceImpl struct {
	expenditureRepo expenditureStore
	storage         filestorage.FileStorage
}

// NewExpenditureService creates a new expenditure service
func NewExpenditureService(expenditureRepo expenditureStore, storage filestorage.FileStorage) ExpenditureService {
	return &expenditureServiceImpl{
		expenditureRepo: expenditureRepo,
		storage:         storage,
	}
}

// Create records an expense with an optional bill attachment
func (s *expenditureServiceImpl) Create(ctx context.Context, req *dto.ExpenditureRequest, bill *multipart.FileHeader, createdBy int64) (*models.Expenditure, error) {
	if bill != nil {
		if err := filestorage.ValidateContentType(bill); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	billPath, err := s.storage.SaveFile(bill, filestorage.BillDir)
	if err != nil {
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}

	expenditure := &models.Expenditure{
		Purpose:   req.Purpose,
		Amount:    req.Amount,
		SpentOn:   req.SpentOn,
		Bill:      billPath,
		CreatedBy: createdBy,
	}

	if err := s.expenditureRepo.Create(ctx, expenditure); err != nil {
		s.removeBill(billPath)
		return nil, fmt.Errorf("failed to create expenditure: %w", err)
	}

	expenditure.Bill = s.storage.FileURL(expenditure.Bill)
	return expenditure, nil
}

// GetAll lists expenditures with their bill URLs resolved
func (s *expenditureServiceImpl) GetAll(ctx context.Context, page, size int) ([]*models.Expenditure, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	expenditures, total, err := s.expenditureRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	for _, expenditure := range expenditures {
		if expenditure.Bill != "" {
			expenditure.Bill = s.storage.FileURL(expenditure.Bill)
		}
	}
	return expenditures, total, nil
}

// GetByID returns an expenditure with its bill URL resolved
func (s *expenditureServiceImpl) GetByID(ctx context.Context, id int64) (*models.Expenditure, error) {
	expenditure, err := s.expenditureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expenditure == nil {
		return nil, apperrors.NewResourceNotFoundError("Expenditure not found")
	}

	if expenditure.Bill != "" {
		expenditure.Bill = s.storage.FileURL(expenditure.Bill)
	}
	return expenditure, nil
}

// Update rewrites an expense. A new bill replaces the stored one, which is
// then removed.
func (s *expenditureServiceImpl) Update(ctx context.Context, id int64, req *dto.ExpenditureRequest, bill *multipart.FileHeader) (*models.Expenditure, error) {
	expenditure, err := s.expenditureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expenditure == nil {
		return nil, apperrors.NewResourceNotFoundError("Expenditure not found")
	}

	if bill != nil {
		if err := filestorage.ValidateContentType(bill); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	oldBill := expenditure.Bill
	newBill, err := s.storage.SaveFile(bill, filestorage.BillDir)
	if err != nil {
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}
	if newBill == "" {
		newBill = oldBill
	}

	expenditure.Purpose = req.Purpose
	expenditure.Amount = req.Amount
	expenditure.SpentOn = req.SpentOn
	expenditure.Bill = newBill

	affected, err := s.expenditureRepo.Update(ctx, expenditure)
	if err != nil {
		if newBill != oldBill {
			s.removeBill(newBill)
		}
		return nil, fmt.Errorf("failed to update expenditure: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Expenditure not found")
	}

	if oldBill != "" && oldBill != newBill {
		s.removeBill(oldBill)
	}

	return s.GetByID(ctx, id)
}

// Delete removes an expense and its bill attachment
func (s *expenditureServiceImpl) Delete(ctx context.Context, id int64) error {
	expenditure, err := s.expenditureRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expenditure == nil {
		return apperrors.NewResourceNotFoundError("Expenditure not found")
	}

	affected, err := s.expenditureRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete expenditure: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Expenditure not found")
	}

	s.removeBill(expenditure.Bill)
	return nil
}

func (s *expenditureServiceImpl) removeBill(path string) {
	if path == "" {
		return
	}
	if err := s.storage.DeleteFile(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to delete bill file")
	}
}
