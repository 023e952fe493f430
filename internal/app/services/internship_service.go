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

type internshipStore interface {
	Create(ctx context.Context, internship *models.Internship) error
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	GetAll(ctx context.Context, filter *dto.InternshipFilterRequest, offset, limit int) ([]*models.Internship, int64, error)
	Update(ctx context.Context, internship *models.Internship) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// InternshipService defines internship record logic, including certificate
// attachment lifecycle
type InternshipService interface {
	Create(ctx context.Context, studentID int64, req *dto.CreateInternshipRequest, certificate *multipart.FileHeader) (*models.Internship, error)
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	GetAll(ctx context.Context, filter *dto.InternshipFilterRequest) ([]*models.Internship, int64, error)
	Update(ctx context.Context, id int64, actorStudentID *int64, req *dto.UpdateInternshipRequest, certificate *multipart.FileHeader) (*models.Internship, error)
	Delete(ctx context.Context, id int64, actorStudentID *int64) error
}

type internshipServiceImpl struct {
	internshipRepo internshipStore
	storage        filestorage.FileStorage
}

// NewInternshipService creates a new internship service
func NewInternshipService(internshipRepo internshipStore, storage filestorage.FileStorage) InternshipService {
	return &internshipServiceImpl{
		internshipRepo: internshipRepo,
		storage:        storage,
	}
}

// Create records a completed internship for a student. The certificate is
// validated before anything touches the database; a saved file is removed
// again if the insert fails.
func (s *internshipServiceImpl) Create(ctx context.Context, studentID int64, req *dto.CreateInternshipRequest, certificate *multipart.FileHeader) (*models.Internship, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("End date must be after start date")
	}
	if certificate == nil {
		return nil, apperrors.NewValidationError("Certificate file is required")
	}
	if err := filestorage.ValidateContentType(certificate); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	certificatePath, err := s.storage.SaveFile(certificate, filestorage.CertificateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to save certificate: %w", err)
	}

	internship := &models.Internship{
		StudentID:   studentID,
		CompanyID:   req.CompanyID,
		Semester:    req.Semester,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Stipend:     req.Stipend,
		Certificate: certificatePath,
	}

	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		s.removeFile(certificatePath)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Internship for this company and semester already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced company does not exist")
		}
		return nil, fmt.Errorf("failed to create internship: %w", err)
	}

	logger.Info().Int64("student_id", studentID).Int64("internship_id", internship.ID).Msg("Internship recorded")
	return s.GetByID(ctx, internship.ID)
}

// GetByID returns an internship with its certificate URL resolved
func (s *internshipServiceImpl) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if internship == nil {
		return nil, apperrors.NewResourceNotFoundError("Internship not found")
	}

	if internship.Certificate != "" {
		internship.Certificate = s.storage.FileURL(internship.Certificate)
	}
	return internship, nil
}

// GetAll lists internships matching the filter
func (s *internshipServiceImpl) GetAll(ctx context.Context, filter *dto.InternshipFilterRequest) ([]*models.Internship, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	internships, total, err := s.internshipRepo.GetAll(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	for _, internship := range internships {
		if internship.Certificate != "" {
			internship.Certificate = s.storage.FileURL(internship.Certificate)
		}
	}
	return internships, total, nil
}

// Update rewrites an internship record. A non-nil actorStudentID restricts
// the edit to that student's own records; administrators pass nil. A new
// certificate replaces the stored one, which is then removed.
func (s *internshipServiceImpl) Update(ctx context.Context, id int64, actorStudentID *int64, req *dto.UpdateInternshipRequest, certificate *multipart.FileHeader) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if internship == nil {
		return nil, apperrors.NewResourceNotFoundError("Internship not found")
	}
	if actorStudentID != nil && internship.StudentID != *actorStudentID {
		return nil, apperrors.NewForbiddenError("You may only modify your own internships")
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("End date must be after start date")
	}
	if certificate != nil {
		if err := filestorage.ValidateContentType(certificate); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	oldCertificate := internship.Certificate
	newCertificate, err := s.storage.SaveFile(certificate, filestorage.CertificateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to save certificate: %w", err)
	}
	if newCertificate == "" {
		newCertificate = oldCertificate
	}

	internship.CompanyID = req.CompanyID
	internship.Semester = req.Semester
	internship.StartDate = req.StartDate
	internship.EndDate = req.EndDate
	internship.Stipend = req.Stipend
	internship.Certificate = newCertificate

	affected, err := s.internshipRepo.Update(ctx, internship)
	if err != nil {
		if newCertificate != oldCertificate {
			s.removeFile(newCertificate)
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Internship for this company and semester already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced company does not exist")
		}
		return nil, fmt.Errorf("failed to update internship: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Internship not found")
	}

	if oldCertificate != "" && oldCertificate != newCertificate {
		s.removeFile(oldCertificate)
	}

	return s.GetByID(ctx, id)
}

// Delete removes an internship record and its certificate. The same
// ownership rule as Update applies.
func (s *internshipServiceImpl) Delete(ctx context.Context, id int64, actorStudentID *int64) error {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if internship == nil {
		return apperrors.NewResourceNotFoundError("Internship not found")
	}
	if actorStudentID != nil && internship.StudentID != *actorStudentID {
		return apperrors.NewForbiddenError("You may only modify your own internships")
	}

	affected, err := s.internshipRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete internship: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Internship not found")
	}

	s.removeFile(internship.Certificate)
	return nil
}

func (s *internshipServiceImpl) removeFile(path string) {
	if path == "" {
		return
	}
	if err := s.storage.DeleteFile(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to delete certificate file")
	}
}
