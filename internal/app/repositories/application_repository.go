package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmit/placenet/internal/app/models"
)

// ApplicationRepository handles database operations for placement applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application. A unique constraint on
// (student_id, drive_id) rejects duplicates.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.PlacementApplication) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO placement_applications (student_id, drive_id, status, ctc)
		VALUES ($1, $2, $3, $4)
		RETURNING id, applied_at, updated_at`,
		application.StudentID, application.DriveID, application.Status, application.CTC,
	).Scan(&application.ID, &application.AppliedAt, &application.UpdatedAt)
}

// GetByDriveAndStudent retrieves one student's application to one drive; nil
// when no row matches
func (r *ApplicationRepository) GetByDriveAndStudent(ctx context.Context, driveID, studentID int64) (*models.PlacementApplication, error) {
	var app models.PlacementApplication
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, drive_id, status, ctc, job_role, place, offer_letter, applied_at, updated_at
		FROM placement_applications
		WHERE drive_id = $1 AND student_id = $2`, driveID, studentID,
	).Scan(&app.ID, &app.StudentID, &app.DriveID, &app.Status, &app.CTC,
		&app.JobRole, &app.Place, &app.OfferLetter, &app.AppliedAt, &app.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &app, nil
}

// CountPendingByStudent returns the number of a student's applications still
// awaiting an outcome
func (r *ApplicationRepository) CountPendingByStudent(ctx context.Context, studentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM placement_applications
		WHERE student_id = $1 AND status = $2`,
		studentID, models.ApplicationPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending applications: %w", err)
	}
	return count, nil
}

// ListDriveIDsByStudent returns the IDs of all drives a student has applied to
func (r *ApplicationRepository) ListDriveIDsByStudent(ctx context.Context, studentID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT drive_id FROM placement_applications WHERE student_id = $1 ORDER BY drive_id`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ListByStudent retrieves a student's applications with drive and company
// details, newest first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.PlacementApplication, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.drive_id, a.status, a.ctc, a.job_role, a.place, a.offer_letter,
		       a.applied_at, a.updated_at,
		       d.id, d.session_id, d.company_id, d.job_role, d.ctc, d.location, d.drive_date, d.is_active,
		       c.id, c.name, c.company_type_id, c.website, c.contact_email
		FROM placement_applications a
		JOIN placement_drives d ON d.id = a.drive_id
		JOIN companies c ON c.id = d.company_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

// ListByDrive retrieves all applications to a drive with applicant details,
// with pagination
func (r *ApplicationRepository) ListByDrive(ctx context.Context, driveID int64, offset, limit int) ([]*models.PlacementApplication, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM placement_applications WHERE drive_id = $1`, driveID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applications: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.drive_id, a.status, a.ctc, a.job_role, a.place, a.offer_letter,
		       a.applied_at, a.updated_at,
		       d.id, d.session_id, d.company_id, d.job_role, d.ctc, d.location, d.drive_date, d.is_active,
		       c.id, c.name, c.company_type_id, c.website, c.contact_email
		FROM placement_applications a
		JOIN placement_drives d ON d.id = a.drive_id
		JOIN companies c ON c.id = d.company_id
		WHERE a.drive_id = $1
		ORDER BY a.applied_at
		OFFSET $2 LIMIT $3`, driveID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps, err := collectApplications(rows)
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func collectApplications(rows pgx.Rows) ([]*models.PlacementApplication, error) {
	var apps []*models.PlacementApplication
	for rows.Next() {
		var app models.PlacementApplication
		var drive models.PlacementDrive
		var company models.Company
		err := rows.Scan(
			&app.ID, &app.StudentID, &app.DriveID, &app.Status, &app.CTC,
			&app.JobRole, &app.Place, &app.OfferLetter, &app.AppliedAt, &app.UpdatedAt,
			&drive.ID, &drive.SessionID, &drive.CompanyID, &drive.JobRole, &drive.CTC,
			&drive.Location, &drive.DriveDate, &drive.IsActive,
			&company.ID, &company.Name, &company.CompanyTypeID, &company.Website, &company.ContactEmail,
		)
		if err != nil {
			return nil, err
		}
		drive.Company = &company
		app.Drive = &drive
		apps = append(apps, &app)
	}
	return apps, rows.Err()
}

// UpdateStatus rewrites the outcome columns of one application and returns
// affected rows. Callers pass empty role, place and offer letter to clear
// them when the outcome moves away from SELECTED.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, driveID, studentID int64, status models.ApplicationStatus, jobRole, place, offerLetter string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE placement_applications
		SET status = $1, job_role = $2, place = $3, offer_letter = $4, updated_at = NOW()
		WHERE drive_id = $5 AND student_id = $6`,
		status, jobRole, place, offerLetter, driveID, studentID)
	if err != nil {
		return 0, fmt.Errorf("error updating application status: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
