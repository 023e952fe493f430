package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmit/placenet/internal/app/models"
)

// DriveRepository handles database operations for placement drives
type DriveRepository struct {
	db *pgxpool.Pool
}

// NewDriveRepository creates a new drive repository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{db: db}
}

const driveSelectColumns = `
	d.id, d.session_id, d.company_id, d.job_role, d.ctc, d.location, d.drive_date, d.is_active,
	c.id, c.name, c.company_type_id, c.website, c.contact_email`

func scanDrive(row pgx.Row) (*models.PlacementDrive, error) {
	var drive models.PlacementDrive
	var company models.Company
	err := row.Scan(
		&drive.ID, &drive.SessionID, &drive.CompanyID, &drive.JobRole, &drive.CTC,
		&drive.Location, &drive.DriveDate, &drive.IsActive,
		&company.ID, &company.Name, &company.CompanyTypeID, &company.Website, &company.ContactEmail,
	)
	if err != nil {
		return nil, err
	}
	drive.Company = &company
	return &drive, nil
}

// Create creates a new placement drive
func (r *DriveRepository) Create(ctx context.Context, drive *models.PlacementDrive) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO placement_drives (session_id, company_id, job_role, ctc, location, drive_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		drive.SessionID, drive.CompanyID, drive.JobRole, drive.CTC,
		drive.Location, drive.DriveDate, drive.IsActive).Scan(&drive.ID)
}

// GetAll retrieves drives with their companies, with pagination. When
// activeOnly is true, inactive drives are excluded. Optional session filter.
func (r *DriveRepository) GetAll(ctx context.Context, sessionID *int64, activeOnly bool, offset, limit int) ([]*models.PlacementDrive, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if activeOnly {
		conditions = append(conditions, "d.is_active = TRUE")
	}
	if sessionID != nil {
		conditions = append(conditions, "d.session_id = $"+strconv.Itoa(argPos))
		args = append(args, *sessionID)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM placement_drives d ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting drives: %w", err)
	}

	query := `
		SELECT ` + driveSelectColumns + `
		FROM placement_drives d
		JOIN companies c ON c.id = d.company_id ` + where +
		fmt.Sprintf(" ORDER BY d.drive_date DESC OFFSET $%d LIMIT $%d", argPos, argPos+1)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var drives []*models.PlacementDrive
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, 0, err
		}
		drives = append(drives, drive)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return drives, total, nil
}

// GetByID retrieves a drive with its company; nil when no row matches
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	query := `
		SELECT ` + driveSelectColumns + `
		FROM placement_drives d
		JOIN companies c ON c.id = d.company_id
		WHERE d.id = $1`

	drive, err := scanDrive(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}
	return drive, nil
}

// Update updates a drive and returns affected rows
func (r *DriveRepository) Update(ctx context.Context, drive *models.PlacementDrive) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE placement_drives
		SET session_id = $1, company_id = $2, job_role = $3, ctc = $4,
		    location = $5, drive_date = $6, is_active = $7
		WHERE id = $8`,
		drive.SessionID, drive.CompanyID, drive.JobRole, drive.CTC,
		drive.Location, drive.DriveDate, drive.IsActive, drive.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating drive: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete deletes a drive and returns affected rows
func (r *DriveRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM placement_drives WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
