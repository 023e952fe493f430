package services

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/pkg/apperrors"
)

type fakeInternshipStore struct {
	internship     *models.Internship
	createErr      error
	updateAffected int64
	updateErr      error
	deleteAffected int64
}

func (f *fakeInternshipStore) Create(ctx context.Context, internship *models.Internship) error {
	if f.createErr != nil {
		return f.createErr
	}
	internship.ID = 1
	f.internship = internship
	return nil
}

func (f *fakeInternshipStore) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	return f.internship, nil
}

func (f *fakeInternshipStore) GetAll(ctx context.Context, filter *dto.InternshipFilterRequest, offset, limit int) ([]*models.Internship, int64, error) {
	return nil, 0, nil
}

func (f *fakeInternshipStore) Update(ctx context.Context, internship *models.Internship) (int64, error) {
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	f.internship = internship
	return f.updateAffected, nil
}

func (f *fakeInternshipStore) Delete(ctx context.Context, id int64) (int64, error) {
	return f.deleteAffected, nil
}

func internshipRequest() *dto.CreateInternshipRequest {
	return &dto.CreateInternshipRequest{
		CompanyID: 3,
		Semester:  4,
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		Stipend:   15000,
	}
}

func TestCreateInternship(t *testing.T) {
	t.Run("records an internship with its certificate", func(t *testing.T) {
		store := &fakeInternshipStore{}
		storage := &fakeStorage{savedPath: "certificates/cert-abc.pdf"}
		svc := NewInternshipService(store, storage)

		internship, err := svc.Create(context.Background(), 7, internshipRequest(), pdfFileHeader("cert.pdf"))

		require.NoError(t, err)
		assert.Equal(t, int64(7), internship.StudentID)
		assert.Equal(t, int64(1), store.internship.ID)
		assert.Equal(t, "http://localhost:8080/uploads/certificates/cert-abc.pdf", internship.Certificate)
	})

	t.Run("rejects a missing certificate", func(t *testing.T) {
		svc := NewInternshipService(&fakeInternshipStore{}, &fakeStorage{})

		_, err := svc.Create(context.Background(), 7, internshipRequest(), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "Certificate file is required", apperrors.Message(err, ""))
	})

	t.Run("rejects an end date before the start date", func(t *testing.T) {
		req := internshipRequest()
		req.EndDate = req.StartDate.AddDate(0, 0, -1)

		svc := NewInternshipService(&fakeInternshipStore{}, &fakeStorage{})
		_, err := svc.Create(context.Background(), 7, req, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "End date must be after start date", apperrors.Message(err, ""))
	})

	t.Run("rejects an unsupported certificate type before saving", func(t *testing.T) {
		storage := &fakeStorage{}
		svc := NewInternshipService(&fakeInternshipStore{}, storage)

		badFile := &multipart.FileHeader{
			Filename: "cert.zip",
			Header:   textproto.MIMEHeader{"Content-Type": []string{"application/zip"}},
		}
		_, err := svc.Create(context.Background(), 7, internshipRequest(), badFile)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Empty(t, storage.deleted)
	})

	t.Run("duplicate maps to conflict and removes the saved certificate", func(t *testing.T) {
		store := &fakeInternshipStore{createErr: &pgconn.PgError{Code: "23505"}}
		storage := &fakeStorage{savedPath: "certificates/cert-abc.pdf"}
		svc := NewInternshipService(store, storage)

		_, err := svc.Create(context.Background(), 7, internshipRequest(), pdfFileHeader("cert.pdf"))

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Contains(t, storage.deleted, "certificates/cert-abc.pdf")
	})

	t.Run("missing company maps to bad request", func(t *testing.T) {
		store := &fakeInternshipStore{createErr: &pgconn.PgError{Code: "23503"}}
		svc := NewInternshipService(store, &fakeStorage{})

		_, err := svc.Create(context.Background(), 7, internshipRequest(), pdfFileHeader("cert.pdf"))

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})
}

func TestUpdateInternship(t *testing.T) {
	owned := func() *models.Internship {
		return &models.Internship{ID: 1, StudentID: 7, CompanyID: 3, Semester: 4, Certificate: "certificates/old.pdf"}
	}
	updateReq := &dto.UpdateInternshipRequest{
		CompanyID: 3,
		Semester:  4,
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
	}

	t.Run("students may only edit their own records", func(t *testing.T) {
		store := &fakeInternshipStore{internship: owned(), updateAffected: 1}
		svc := NewInternshipService(store, &fakeStorage{})

		other := int64(8)
		_, err := svc.Update(context.Background(), 1, &other, updateReq, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("administrators bypass the ownership check", func(t *testing.T) {
		store := &fakeInternshipStore{internship: owned(), updateAffected: 1}
		svc := NewInternshipService(store, &fakeStorage{})

		_, err := svc.Update(context.Background(), 1, nil, updateReq, nil)

		require.NoError(t, err)
	})

	t.Run("a new certificate replaces and deletes the old one", func(t *testing.T) {
		store := &fakeInternshipStore{internship: owned(), updateAffected: 1}
		storage := &fakeStorage{savedPath: "certificates/new.pdf"}
		svc := NewInternshipService(store, storage)

		owner := int64(7)
		_, err := svc.Update(context.Background(), 1, &owner, updateReq, pdfFileHeader("cert.pdf"))

		require.NoError(t, err)
		assert.Contains(t, storage.deleted, "certificates/old.pdf")
	})
}

func TestDeleteInternship(t *testing.T) {
	t.Run("removes the record and its certificate", func(t *testing.T) {
		store := &fakeInternshipStore{
			internship:     &models.Internship{ID: 1, StudentID: 7, Certificate: "certificates/cert.pdf"},
			deleteAffected: 1,
		}
		storage := &fakeStorage{}
		svc := NewInternshipService(store, storage)

		owner := int64(7)
		err := svc.Delete(context.Background(), 1, &owner)

		require.NoError(t, err)
		assert.Contains(t, storage.deleted, "certificates/cert.pdf")
	})

	t.Run("students may not delete others' records", func(t *testing.T) {
		store := &fakeInternshipStore{
			internship:     &models.Internship{ID: 1, StudentID: 7},
			deleteAffected: 1,
		}
		svc := NewInternshipService(store, &fakeStorage{})

		other := int64(9)
		err := svc.Delete(context.Background(), 1, &other)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}
