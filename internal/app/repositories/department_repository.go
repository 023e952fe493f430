package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmit/placenet/internal/app/models"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO departments (name, code) VALUES ($1, $2) RETURNING id`,
		department.Name, department.Code).Scan(&department.ID)
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.Code); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	return departments, rows.Err()
}

// GetByID retrieves a department by ID; nil when no row matches
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	var department models.Department
	err := r.db.QueryRow(ctx, `SELECT id, name, code FROM departments WHERE id = $1`, id).
		Scan(&department.ID, &department.Name, &department.Code)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// Update updates a department and returns affected rows
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE departments SET name = $1, code = $2 WHERE id = $3`,
		department.Name, department.Code, department.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating department: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete deletes a department and returns affected rows
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
