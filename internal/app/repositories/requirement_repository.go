package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmit/placenet/internal/app/models"
)

// RequirementRepository handles database operations for internship requirements
type RequirementRepository struct {
	db *pgxpool.Pool
}

// NewRequirementRepository creates a new requirement repository
func NewRequirementRepository(db *pgxpool.Pool) *RequirementRepository {
	return &RequirementRepository{db: db}
}

// Create inserts a new requirement. A unique constraint on
// (program_id, semester) rejects duplicates.
func (r *RequirementRepository) Create(ctx context.Context, requirement *models.InternshipRequirement) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO internship_requirements (program_id, semester, required_count)
		VALUES ($1, $2, $3) RETURNING id`,
		requirement.ProgramID, requirement.Semester, requirement.RequiredCount).
		Scan(&requirement.ID)
}

// GetAll retrieves all requirements with their programs
func (r *RequirementRepository) GetAll(ctx context.Context) ([]*models.InternshipRequirement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.program_id, r.semester, r.required_count,
		       p.id, p.name, p.department_id, p.duration_years
		FROM internship_requirements r
		JOIN programs p ON p.id = r.program_id
		ORDER BY p.name, r.semester`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requirements []*models.InternshipRequirement
	for rows.Next() {
		var requirement models.InternshipRequirement
		var program models.Program
		err := rows.Scan(&requirement.ID, &requirement.ProgramID, &requirement.Semester,
			&requirement.RequiredCount, &program.ID, &program.Name,
			&program.DepartmentID, &program.DurationYears)
		if err != nil {
			return nil, err
		}
		requirement.Program = &program
		requirements = append(requirements, &requirement)
	}

	return requirements, rows.Err()
}

// GetByID retrieves a requirement by ID; nil when no row matches
func (r *RequirementRepository) GetByID(ctx context.Context, id int64) (*models.InternshipRequirement, error) {
	var requirement models.InternshipRequirement
	err := r.db.QueryRow(ctx, `
		SELECT id, program_id, semester, required_count
		FROM internship_requirements WHERE id = $1`, id).
		Scan(&requirement.ID, &requirement.ProgramID, &requirement.Semester, &requirement.RequiredCount)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving requirement: %w", err)
	}

	return &requirement, nil
}

// GetByProgramID retrieves all requirements of one program, lowest semester
// first
func (r *RequirementRepository) GetByProgramID(ctx context.Context, programID int64) ([]*models.InternshipRequirement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, program_id, semester, required_count
		FROM internship_requirements
		WHERE program_id = $1
		ORDER BY semester`, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requirements []*models.InternshipRequirement
	for rows.Next() {
		var requirement models.InternshipRequirement
		err := rows.Scan(&requirement.ID, &requirement.ProgramID,
			&requirement.Semester, &requirement.RequiredCount)
		if err != nil {
			return nil, err
		}
		requirements = append(requirements, &requirement)
	}

	return requirements, rows.Err()
}

// Update updates a requirement and returns affected rows
func (r *RequirementRepository) Update(ctx context.Context, requirement *models.InternshipRequirement) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE internship_requirements
		SET program_id = $1, semester = $2, required_count = $3
		WHERE id = $4`,
		requirement.ProgramID, requirement.Semester, requirement.RequiredCount, requirement.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating requirement: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete deletes a requirement and returns affected rows
func (r *RequirementRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM internship_requirements WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
