package services

import (
	"context"
	"fmt"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/pkg/apperrors"
	"github.com/asmit/placenet/internal/pkg/dberrors"
	"github.com/asmit/placenet/internal/pkg/helpers"
	"github.com/asmit/placenet/internal/pkg/logger"
)

// studentStore is the slice of the student repository this service needs
type studentStore interface {
	GetByID(ctx context.Context, id int64) (*models.StudentProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	GetAll(ctx context.Context, filter *dto.StudentFilterRequest, offset, limit int) ([]*models.StudentProfile, int64, error)
	Update(ctx context.Context, profile *models.StudentProfile, updatedBy int64) (int64, error)
	SetFrozen(ctx context.Context, id int64, frozen bool, updatedBy int64) (int64, error)
}

type pendingApplicationCounter interface {
	CountPendingByStudent(ctx context.Context, studentID int64) (int64, error)
}

type requirementSource interface {
	GetByProgramID(ctx context.Context, programID int64) ([]*models.InternshipRequirement, error)
}

type internshipCounter interface {
	CountByStudentAndSemester(ctx context.Context, studentID int64, semester int) (int64, error)
}

// StudentService defines student profile logic, including the freeze gate
type StudentService interface {
	GetAll(ctx context.Context, filter *dto.StudentFilterRequest) ([]*models.StudentProfile, int64, error)
	GetByID(ctx context.Context, id int64) (*models.StudentProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	UpdateProfile(ctx context.Context, studentID int64, req *dto.UpdateStudentProfileRequest, actorUserID int64) (*models.StudentProfile, error)
	FreezeProfile(ctx context.Context, studentID, actorUserID int64) error
	UnfreezeProfile(ctx context.Context, studentID, actorUserID int64) error
}

type studentServiceImpl struct {
	studentRepo     studentStore
	applicationRepo pendingApplicationCounter
	requirementRepo requirementSource
	internshipRepo  internshipCounter
}

// NewStudentService creates a new student service
func NewStudentService(
	studentRepo studentStore,
	applicationRepo pendingApplicationCounter,
	requirementRepo requirementSource,
	internshipRepo internshipCounter,
) StudentService {
	return &studentServiceImpl{
		studentRepo:     studentRepo,
		applicationRepo: applicationRepo,
		requirementRepo: requirementRepo,
		internshipRepo:  internshipRepo,
	}
}

// GetAll lists active students matching the filter
func (s *studentServiceImpl) GetAll(ctx context.Context, filter *dto.StudentFilterRequest) ([]*models.StudentProfile, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	return s.studentRepo.GetAll(ctx, filter, offset, limit)
}

// GetByID returns a student profile by profile ID
func (s *studentServiceImpl) GetByID(ctx context.Context, id int64) (*models.StudentProfile, error) {
	profile, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NewResourceNotFoundError("Student not found")
	}
	return profile, nil
}

// GetByUserID returns a student profile by account ID
func (s *studentServiceImpl) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	profile, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NewResourceNotFoundError("Student not found")
	}
	return profile, nil
}

// UpdateProfile rewrites the mutable profile fields. Frozen profiles are
// rejected for students before this is reached; administrators may always
// edit.
func (s *studentServiceImpl) UpdateProfile(ctx context.Context, studentID int64, req *dto.UpdateStudentProfileRequest, actorUserID int64) (*models.StudentProfile, error) {
	profile, err := s.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	profile.ProgramID = req.ProgramID
	profile.DepartmentID = req.DepartmentID
	profile.SessionID = req.SessionID
	profile.Semester = req.Semester
	profile.CGPA = req.CGPA
	profile.Phone = req.Phone

	affected, err := s.studentRepo.Update(ctx, profile, actorUserID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced program, department or session does not exist")
		}
		return nil, fmt.Errorf("failed to update student profile: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Student not found")
	}

	return s.GetByID(ctx, studentID)
}

// FreezeProfile marks a profile as final. The freeze is refused while any
// placement application is still pending, or while the student is short of
// the internship requirement for any semester of their program.
func (s *studentServiceImpl) FreezeProfile(ctx context.Context, studentID, actorUserID int64) error {
	profile, err := s.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if profile.IsFrozen {
		return apperrors.NewConflictError("Profile is already frozen")
	}

	pending, err := s.applicationRepo.CountPendingByStudent(ctx, studentID)
	if err != nil {
		return fmt.Errorf("failed to count pending applications: %w", err)
	}
	if pending > 0 {
		return apperrors.NewValidationError("Cannot freeze profile while placement applications are pending")
	}

	requirements, err := s.requirementRepo.GetByProgramID(ctx, profile.ProgramID)
	if err != nil {
		return fmt.Errorf("failed to load internship requirements: %w", err)
	}
	for _, requirement := range requirements {
		count, err := s.internshipRepo.CountByStudentAndSemester(ctx, studentID, requirement.Semester)
		if err != nil {
			return fmt.Errorf("failed to count internships: %w", err)
		}
		if count < int64(requirement.RequiredCount) {
			missing := int64(requirement.RequiredCount) - count
			return apperrors.NewValidationError(
				fmt.Sprintf("Missing %d internship(s) for Semester %d", missing, requirement.Semester))
		}
	}

	affected, err := s.studentRepo.SetFrozen(ctx, studentID, true, actorUserID)
	if err != nil {
		return fmt.Errorf("failed to freeze profile: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Student not found")
	}

	logger.Info().Int64("student_id", studentID).Int64("actor", actorUserID).Msg("Profile frozen")
	return nil
}

// UnfreezeProfile reopens a profile for edits. Admin only; the route layer
// enforces the role. Unfreezing an already-open profile is a no-op success.
func (s *studentServiceImpl) UnfreezeProfile(ctx context.Context, studentID, actorUserID int64) error {
	affected, err := s.studentRepo.SetFrozen(ctx, studentID, false, actorUserID)
	if err != nil {
		return fmt.Errorf("failed to unfreeze profile: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Student not found")
	}

	logger.Info().Int64("student_id", studentID).Int64("actor", actorUserID).Msg("Profile unfrozen")
	return nil
}
