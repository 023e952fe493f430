package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	getByIDFn   func(ctx context.Context, id int64) (*models.StudentProfile, error)
	setFrozenFn func(ctx context.Context, id int64, frozen bool, updatedBy int64) (int64, error)
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.StudentProfile, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeStudentStore) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return nil, nil
}

func (f *fakeStudentStore) GetAll(ctx context.Context, filter *dto.StudentFilterRequest, offset, limit int) ([]*models.StudentProfile, int64, error) {
	return nil, 0, nil
}

func (f *fakeStudentStore) Update(ctx context.Context, profile *models.StudentProfile, updatedBy int64) (int64, error) {
	return 1, nil
}

func (f *fakeStudentStore) SetFrozen(ctx context.Context, id int64, frozen bool, updatedBy int64) (int64, error) {
	if f.setFrozenFn != nil {
		return f.setFrozenFn(ctx, id, frozen, updatedBy)
	}
	return 1, nil
}

type fakePendingCounter struct {
	pending int64
}

func (f *fakePendingCounter) CountPendingByStudent(ctx context.Context, studentID int64) (int64, error) {
	return f.pending, nil
}

type fakeRequirementSource struct {
	requirements []*models.InternshipRequirement
}

func (f *fakeRequirementSource) GetByProgramID(ctx context.Context, programID int64) ([]*models.InternshipRequirement, error) {
	return f.requirements, nil
}

type fakeInternshipCounter struct {
	counts map[int]int64
}

func (f *fakeInternshipCounter) CountByStudentAndSemester(ctx context.Context, studentID int64, semester int) (int64, error) {
	return f.counts[semester], nil
}

func newFreezeFixture(profile *models.StudentProfile) (*fakeStudentStore, *fakePendingCounter, *fakeRequirementSource, *fakeInternshipCounter) {
	store := &fakeStudentStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.StudentProfile, error) {
			return profile, nil
		},
	}
	return store, &fakePendingCounter{}, &fakeRequirementSource{}, &fakeInternshipCounter{counts: map[int]int64{}}
}

func TestFreezeProfile(t *testing.T) {
	profile := &models.StudentProfile{ID: 7, ProgramID: 3, Semester: 4}

	t.Run("succeeds when no requirements block it", func(t *testing.T) {
		store, pending, reqs, interns := newFreezeFixture(profile)
		frozen := false
		store.setFrozenFn = func(ctx context.Context, id int64, f bool, updatedBy int64) (int64, error) {
			frozen = f
			return 1, nil
		}

		svc := NewStudentService(store, pending, reqs, interns)
		err := svc.FreezeProfile(context.Background(), 7, 99)

		require.NoError(t, err)
		assert.True(t, frozen)
	})

	t.Run("rejects while applications are pending", func(t *testing.T) {
		store, pending, reqs, interns := newFreezeFixture(profile)
		pending.pending = 2

		svc := NewStudentService(store, pending, reqs, interns)
		err := svc.FreezeProfile(context.Background(), 7, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "Cannot freeze profile while placement applications are pending", apperrors.Message(err, ""))
	})

	t.Run("rejects when an internship requirement is unmet", func(t *testing.T) {
		store, pending, reqs, interns := newFreezeFixture(profile)
		reqs.requirements = []*models.InternshipRequirement{
			{ProgramID: 3, Semester: 2, RequiredCount: 2},
		}
		interns.counts[2] = 1

		svc := NewStudentService(store, pending, reqs, interns)
		err := svc.FreezeProfile(context.Background(), 7, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "Missing 1 internship(s) for Semester 2", apperrors.Message(err, ""))
	})

	t.Run("checks requirements beyond the current semester too", func(t *testing.T) {
		store, pending, reqs, interns := newFreezeFixture(profile)
		reqs.requirements = []*models.InternshipRequirement{
			{ProgramID: 3, Semester: 6, RequiredCount: 1},
		}

		svc := NewStudentService(store, pending, reqs, interns)
		err := svc.FreezeProfile(context.Background(), 7, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "Missing 1 internship(s) for Semester 6", apperrors.Message(err, ""))
	})

	t.Run("conflicts when already frozen", func(t *testing.T) {
		frozenProfile := &models.StudentProfile{ID: 7, ProgramID: 3, Semester: 4, IsFrozen: true}
		store, pending, reqs, interns := newFreezeFixture(frozenProfile)

		svc := NewStudentService(store, pending, reqs, interns)
		err := svc.FreezeProfile(context.Background(), 7, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("missing student maps to not found", func(t *testing.T) {
		store, pending, reqs, interns := newFreezeFixture(nil)

		svc := NewStudentService(store, pending, reqs, interns)
		err := svc.FreezeProfile(context.Background(), 7, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestUnfreezeProfile(t *testing.T) {
	t.Run("reopens a frozen profile", func(t *testing.T) {
		profile := &models.StudentProfile{ID: 7, IsFrozen: true}
		store, pending, reqs, interns := newFreezeFixture(profile)
		var gotFrozen *bool
		store.setFrozenFn = func(ctx context.Context, id int64, f bool, updatedBy int64) (int64, error) {
			gotFrozen = &f
			return 1, nil
		}

		svc := NewStudentService(store, pending, reqs, interns)
		err := svc.UnfreezeProfile(context.Background(), 7, 99)

		require.NoError(t, err)
		require.NotNil(t, gotFrozen)
		assert.False(t, *gotFrozen)
	})

	t.Run("unfreezing an open profile succeeds", func(t *testing.T) {
		profile := &models.StudentProfile{ID: 7, IsFrozen: false}
		store, pending, reqs, interns := newFreezeFixture(profile)

		svc := NewStudentService(store, pending, reqs, interns)
		err := svc.UnfreezeProfile(context.Background(), 7, 99)

		require.NoError(t, err)
	})

	t.Run("missing student maps to not found", func(t *testing.T) {
		store, pending, reqs, interns := newFreezeFixture(nil)
		store.setFrozenFn = func(ctx context.Context, id int64, f bool, updatedBy int64) (int64, error) {
			return 0, nil
		}

		svc := NewStudentService(store, pending, reqs, interns)
		err := svc.UnfreezeProfile(context.Background(), 7, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}
