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
	"github.com/asmit/placenet/internal/app/models/dto"
)

// InternshipRepository handles database operations for internship records
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new internship repository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{db: db}
}

const internshipSelectColumns = `
	i.id, i.student_id, i.company_id, i.semester, i.start_date, i.end_date, i.stipend, i.certificate,
	c.id, c.name, c.company_type_id, c.website, c.contact_email`

func scanInternship(row pgx.Row) (*models.Internship, error) {
	var internship models.Internship
	var company models.Company
	err := row.Scan(
		&internship.ID, &internship.StudentID, &internship.CompanyID, &internship.Semester,
		&internship.StartDate, &internship.EndDate, &internship.Stipend, &internship.Certificate,
		&company.ID, &company.Name, &company.CompanyTypeID, &company.Website, &company.ContactEmail,
	)
	if err != nil {
		return nil, err
	}
	internship.Company = &company
	return &internship, nil
}

// Create inserts a new internship record. A unique constraint on
// (student_id, company_id, semester) rejects duplicates.
func (r *InternshipRepository) Create(ctx context.Context, internship *models.Internship) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO internships (student_id, company_id, semester, start_date, end_date, stipend, certificate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		internship.StudentID, internship.CompanyID, internship.Semester,
		internship.StartDate, internship.EndDate, internship.Stipend, internship.Certificate,
	).Scan(&internship.ID)
}

// GetByID retrieves an internship with its company; nil when no row matches
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	query := `
		SELECT ` + internshipSelectColumns + `
		FROM internships i
		JOIN companies c ON c.id = i.company_id
		WHERE i.id = $1`

	internship, err := scanInternship(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving internship: %w", err)
	}
	return internship, nil
}

// GetAll retrieves internships matching the filter, with pagination
func (r *InternshipRepository) GetAll(ctx context.Context, filter *dto.InternshipFilterRequest, offset, limit int) ([]*models.Internship, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.StudentID != nil {
		conditions = append(conditions, "i.student_id = $"+strconv.Itoa(argPos))
		args = append(args, *filter.StudentID)
		argPos++
	}
	if filter.CompanyID != nil {
		conditions = append(conditions, "i.company_id = $"+strconv.Itoa(argPos))
		args = append(args, *filter.CompanyID)
		argPos++
	}
	if filter.Semester != nil {
		conditions = append(conditions, "i.semester = $"+strconv.Itoa(argPos))
		args = append(args, *filter.Semester)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM internships i ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting internships: %w", err)
	}

	query := `
		SELECT ` + internshipSelectColumns + `
		FROM internships i
		JOIN companies c ON c.id = i.company_id ` + where +
		fmt.Sprintf(" ORDER BY i.start_date DESC OFFSET $%d LIMIT $%d", argPos, argPos+1)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var internships []*models.Internship
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, 0, err
		}
		internships = append(internships, internship)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return internships, total, nil
}

// CountByStudentAndSemester returns the number of internships a student has
// recorded for one semester
func (r *InternshipRepository) CountByStudentAndSemester(ctx context.Context, studentID int64, semester int) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM internships WHERE student_id = $1 AND semester = $2`,
		studentID, semester).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting internships: %w", err)
	}
	return count, nil
}

// Update updates an internship and returns affected rows
func (r *InternshipRepository) Update(ctx context.Context, internship *models.Internship) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE internships
		SET company_id = $1, semester = $2, start_date = $3, end_date = $4,
		    stipend = $5, certificate = $6
		WHERE id = $7`,
		internship.CompanyID, internship.Semester, internship.StartDate, internship.EndDate,
		internship.Stipend, internship.Certificate, internship.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating internship: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete deletes an internship and returns affected rows
func (r *InternshipRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM internships WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
