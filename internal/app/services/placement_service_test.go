package services

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/pkg/apperrors"
)

type fakeDriveSource struct {
	drive *models.PlacementDrive
}

func (f *fakeDriveSource) GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	return f.drive, nil
}

type fakeApplicationStore struct {
	application    *models.PlacementApplication
	created        *models.PlacementApplication
	createErr      error
	updateAffected int64
	updateErr      error
	lastStatus     models.ApplicationStatus
	lastJobRole    string
	lastPlace      string
	lastOffer      string
}

func (f *fakeApplicationStore) Create(ctx context.Context, application *models.PlacementApplication) error {
	if f.createErr != nil {
		return f.createErr
	}
	application.ID = 1
	f.created = application
	return nil
}

func (f *fakeApplicationStore) GetByDriveAndStudent(ctx context.Context, driveID, studentID int64) (*models.PlacementApplication, error) {
	return f.application, nil
}

func (f *fakeApplicationStore) ListDriveIDsByStudent(ctx context.Context, studentID int64) ([]int64, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListByStudent(ctx context.Context, studentID int64) ([]*models.PlacementApplication, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListByDrive(ctx context.Context, driveID int64, offset, limit int) ([]*models.PlacementApplication, int64, error) {
	return nil, 0, nil
}

func (f *fakeApplicationStore) UpdateStatus(ctx context.Context, driveID, studentID int64, status models.ApplicationStatus, jobRole, place, offerLetter string) (int64, error) {
	f.lastStatus = status
	f.lastJobRole = jobRole
	f.lastPlace = place
	f.lastOffer = offerLetter
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	return f.updateAffected, nil
}

type fakeStorage struct {
	savedPath string
	saveErr   error
	deleted   []string
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	return f.savedPath, f.saveErr
}

func (f *fakeStorage) DeleteFile(relPath string) error {
	f.deleted = append(f.deleted, relPath)
	return nil
}

func (f *fakeStorage) FileURL(relPath string) string {
	return "http://localhost:8080/uploads/" + relPath
}

func pdfFileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
	}
}

func TestApply(t *testing.T) {
	t.Run("snapshots the drive CTC onto the application", func(t *testing.T) {
		drives := &fakeDriveSource{drive: &models.PlacementDrive{ID: 5, CTC: 1200000, IsActive: true}}
		apps := &fakeApplicationStore{}

		svc := NewPlacementService(drives, apps, &fakeStorage{})
		application, err := svc.Apply(context.Background(), 7, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(1200000), application.CTC)
		assert.Equal(t, models.ApplicationPending, application.Status)
		require.NotNil(t, apps.created)
		assert.Equal(t, int64(1200000), apps.created.CTC)
	})

	t.Run("inactive drive reads as missing", func(t *testing.T) {
		drives := &fakeDriveSource{drive: &models.PlacementDrive{ID: 5, IsActive: false}}

		svc := NewPlacementService(drives, &fakeApplicationStore{}, &fakeStorage{})
		_, err := svc.Apply(context.Background(), 7, 5)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.Equal(t, "Drive not found", apperrors.Message(err, ""))
	})

	t.Run("missing drive reads as missing", func(t *testing.T) {
		svc := NewPlacementService(&fakeDriveSource{}, &fakeApplicationStore{}, &fakeStorage{})
		_, err := svc.Apply(context.Background(), 7, 5)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("duplicate application maps to conflict", func(t *testing.T) {
		drives := &fakeDriveSource{drive: &models.PlacementDrive{ID: 5, CTC: 600000, IsActive: true}}
		apps := &fakeApplicationStore{createErr: &pgconn.PgError{Code: "23505"}}

		svc := NewPlacementService(drives, apps, &fakeStorage{})
		_, err := svc.Apply(context.Background(), 7, 5)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Equal(t, "Already applied to this drive", apperrors.Message(err, ""))
	})
}

func TestUpdateStatus(t *testing.T) {
	existing := func() *models.PlacementApplication {
		return &models.PlacementApplication{ID: 1, StudentID: 7, DriveID: 5, Status: models.ApplicationPending}
	}

	t.Run("selecting requires role and place", func(t *testing.T) {
		apps := &fakeApplicationStore{application: existing(), updateAffected: 1}
		svc := NewPlacementService(&fakeDriveSource{}, apps, &fakeStorage{})

		_, err := svc.UpdateStatus(context.Background(), 5, 7,
			&dto.UpdatePlacementStatusRequest{IsSelected: dto.SelectionYes}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("selecting stores role, place and offer letter", func(t *testing.T) {
		apps := &fakeApplicationStore{application: existing(), updateAffected: 1}
		storage := &fakeStorage{savedPath: "offerletters/offer-abc.pdf"}
		svc := NewPlacementService(&fakeDriveSource{}, apps, storage)

		_, err := svc.UpdateStatus(context.Background(), 5, 7,
			&dto.UpdatePlacementStatusRequest{IsSelected: dto.SelectionYes, Role: "SDE", Place: "Pune"},
			pdfFileHeader("offer.pdf"))

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationSelected, apps.lastStatus)
		assert.Equal(t, "SDE", apps.lastJobRole)
		assert.Equal(t, "Pune", apps.lastPlace)
		assert.Equal(t, "offerletters/offer-abc.pdf", apps.lastOffer)
	})

	t.Run("rejecting clears selection data and deletes the old letter", func(t *testing.T) {
		application := existing()
		application.Status = models.ApplicationSelected
		application.JobRole = "SDE"
		application.Place = "Pune"
		application.OfferLetter = "offerletters/old.pdf"

		apps := &fakeApplicationStore{application: application, updateAffected: 1}
		storage := &fakeStorage{}
		svc := NewPlacementService(&fakeDriveSource{}, apps, storage)

		_, err := svc.UpdateStatus(context.Background(), 5, 7,
			&dto.UpdatePlacementStatusRequest{IsSelected: dto.SelectionNo}, nil)

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationRejected, apps.lastStatus)
		assert.Empty(t, apps.lastJobRole)
		assert.Empty(t, apps.lastPlace)
		assert.Empty(t, apps.lastOffer)
		assert.Contains(t, storage.deleted, "offerletters/old.pdf")
	})

	t.Run("pending resets the outcome", func(t *testing.T) {
		apps := &fakeApplicationStore{application: existing(), updateAffected: 1}
		svc := NewPlacementService(&fakeDriveSource{}, apps, &fakeStorage{})

		_, err := svc.UpdateStatus(context.Background(), 5, 7,
			&dto.UpdatePlacementStatusRequest{IsSelected: dto.SelectionPending}, nil)

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationPending, apps.lastStatus)
	})

	t.Run("missing application maps to not found", func(t *testing.T) {
		svc := NewPlacementService(&fakeDriveSource{}, &fakeApplicationStore{}, &fakeStorage{})

		_, err := svc.UpdateStatus(context.Background(), 5, 7,
			&dto.UpdatePlacementStatusRequest{IsSelected: dto.SelectionNo}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("rejects an unsupported offer letter type", func(t *testing.T) {
		apps := &fakeApplicationStore{application: existing(), updateAffected: 1}
		svc := NewPlacementService(&fakeDriveSource{}, apps, &fakeStorage{})

		badFile := &multipart.FileHeader{
			Filename: "offer.exe",
			Header:   textproto.MIMEHeader{"Content-Type": []string{"application/octet-stream"}},
		}
		_, err := svc.UpdateStatus(context.Background(), 5, 7,
			&dto.UpdatePlacementStatusRequest{IsSelected: dto.SelectionYes, Role: "SDE", Place: "Pune"}, badFile)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("cleans up a newly saved letter when the update fails", func(t *testing.T) {
		apps := &fakeApplicationStore{application: existing(), updateErr: assert.AnError}
		storage := &fakeStorage{savedPath: "offerletters/new.pdf"}
		svc := NewPlacementService(&fakeDriveSource{}, apps, storage)

		_, err := svc.UpdateStatus(context.Background(), 5, 7,
			&dto.UpdatePlacementStatusRequest{IsSelected: dto.SelectionYes, Role: "SDE", Place: "Pune"},
			pdfFileHeader("offer.pdf"))

		require.Error(t, err)
		assert.Contains(t, storage.deleted, "offerletters/new.pdf")
	})
}
