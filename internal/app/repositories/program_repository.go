package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmit/placenet/internal/app/models"
)

// ProgramRepository handles database operations for degree programs
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// Create creates a new program
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO programs (name, department_id, duration_years)
		VALUES ($1, $2, $3) RETURNING id`,
		program.Name, program.DepartmentID, program.DurationYears).Scan(&program.ID)
}

// GetAll retrieves all programs with their departments, optionally filtered by
// department
func (r *ProgramRepository) GetAll(ctx context.Context, departmentID *int64) ([]*models.Program, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, p.department_id, p.duration_years, d.id, d.name, d.code
		FROM programs p
		JOIN departments d ON d.id = p.department_id
		WHERE ($1::bigint IS NULL OR p.department_id = $1)
		ORDER BY p.name`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		var program models.Program
		var department models.Department
		if err := rows.Scan(&program.ID, &program.Name, &program.DepartmentID, &program.DurationYears,
			&department.ID, &department.Name, &department.Code); err != nil {
			return nil, err
		}
		program.Department = &department
		programs = append(programs, &program)
	}

	return programs, rows.Err()
}

// GetByID retrieves a program by ID; nil when no row matches
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	var program models.Program
	err := r.db.QueryRow(ctx, `
		SELECT id, name, department_id, duration_years FROM programs WHERE id = $1`, id).
		Scan(&program.ID, &program.Name, &program.DepartmentID, &program.DurationYears)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}

	return &program, nil
}

// Update updates a program and returns affected rows
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE programs SET name = $1, department_id = $2, duration_years = $3 WHERE id = $4`,
		program.Name, program.DepartmentID, program.DurationYears, program.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating program: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete deletes a program and returns affected rows
func (r *ProgramRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
