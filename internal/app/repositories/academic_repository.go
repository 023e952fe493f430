package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmit/placenet/internal/app/models"
)

// AcademicRepository handles database operations for academic years and sessions
type AcademicRepository struct {
	db *pgxpool.Pool
}

// NewAcademicRepository creates a new academic repository
func NewAcademicRepository(db *pgxpool.Pool) *AcademicRepository {
	return &AcademicRepository{db: db}
}

// CreateYear creates a new academic year
func (r *AcademicRepository) CreateYear(ctx context.Context, year *models.AcademicYear) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO academic_years (year) VALUES ($1) RETURNING id`,
		year.Year).Scan(&year.ID)
}

// GetAllYears retrieves all academic years
func (r *AcademicRepository) GetAllYears(ctx context.Context) ([]*models.AcademicYear, error) {
	rows, err := r.db.Query(ctx, `SELECT id, year FROM academic_years ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var year models.AcademicYear
		if err := rows.Scan(&year.ID, &year.Year); err != nil {
			return nil, err
		}
		years = append(years, &year)
	}

	return years, rows.Err()
}

// GetYearByID retrieves an academic year by ID; nil when no row matches
func (r *AcademicRepository) GetYearByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	var year models.AcademicYear
	err := r.db.QueryRow(ctx, `SELECT id, year FROM academic_years WHERE id = $1`, id).
		Scan(&year.ID, &year.Year)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic year: %w", err)
	}

	return &year, nil
}

// UpdateYear updates an academic year and returns affected rows
func (r *AcademicRepository) UpdateYear(ctx context.Context, year *models.AcademicYear) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE academic_years SET year = $1 WHERE id = $2`,
		year.Year, year.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating academic year: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteYear deletes an academic year and returns affected rows
func (r *AcademicRepository) DeleteYear(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM academic_years WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}

// CreateSession creates a new academic session
func (r *AcademicRepository) CreateSession(ctx context.Context, session *models.AcademicSession) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO academic_sessions (name, year_id) VALUES ($1, $2) RETURNING id`,
		session.Name, session.YearID).Scan(&session.ID)
}

// GetAllSessions retrieves all academic sessions with their years
func (r *AcademicRepository) GetAllSessions(ctx context.Context) ([]*models.AcademicSession, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name, s.year_id, y.id, y.year
		FROM academic_sessions s
		JOIN academic_years y ON y.id = s.year_id
		ORDER BY y.year DESC, s.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.AcademicSession
	for rows.Next() {
		var session models.AcademicSession
		var year models.AcademicYear
		if err := rows.Scan(&session.ID, &session.Name, &session.YearID, &year.ID, &year.Year); err != nil {
			return nil, err
		}
		session.Year = &year
		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}

// GetSessionByID retrieves an academic session by ID; nil when no row matches
func (r *AcademicRepository) GetSessionByID(ctx context.Context, id int64) (*models.AcademicSession, error) {
	var session models.AcademicSession
	err := r.db.QueryRow(ctx, `
		SELECT id, name, year_id FROM academic_sessions WHERE id = $1`, id).
		Scan(&session.ID, &session.Name, &session.YearID)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic session: %w", err)
	}

	return &session, nil
}

// UpdateSession updates an academic session and returns affected rows
func (r *AcademicRepository) UpdateSession(ctx context.Context, session *models.AcademicSession) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE academic_sessions SET name = $1, year_id = $2 WHERE id = $3`,
		session.Name, session.YearID, session.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating academic session: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteSession deletes an academic session and returns affected rows
func (r *AcademicRepository) DeleteSession(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM academic_sessions WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
