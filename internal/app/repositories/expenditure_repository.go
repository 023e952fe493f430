package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmit/placenet/internal/app/models"
)

// ExpenditureRepository handles database operations for placement-cell expenses
type ExpenditureRepository struct {
	db *pgxpool.Pool
}

// NewExpenditureRepository creates a new expenditure repository
func NewExpenditureRepository(db *pgxpool.Pool) *ExpenditureRepository {
	return &ExpenditureRepository{db: db}
}

// Create creates a new expenditure
func (r *ExpenditureRepository) Create(ctx context.Context, expenditure *models.Expenditure) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO expenditures (purpose, amount, spent_on, bill, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		expenditure.Purpose, expenditure.Amount, expenditure.SpentOn,
		expenditure.Bill, expenditure.CreatedBy).
		Scan(&expenditure.ID, &expenditure.CreatedAt)
}

// GetAll retrieves expenditures newest first, with pagination
func (r *ExpenditureRepository) GetAll(ctx context.Context, offset, limit int) ([]*models.Expenditure, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM expenditures`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting expenditures: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, purpose, amount, spent_on, bill, created_by, created_at
		FROM expenditures
		ORDER BY spent_on DESC
		OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var expenditures []*models.Expenditure
	for rows.Next() {
		var expenditure models.Expenditure
		err := rows.Scan(&expenditure.ID, &expenditure.Purpose, &expenditure.Amount,
			&expenditure.SpentOn, &expenditure.Bill, &expenditure.CreatedBy, &expenditure.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		expenditures = append(expenditures, &expenditure)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return expenditures, total, nil
}

// GetByID retrieves an expenditure by ID; nil when no row matches
func (r *ExpenditureRepository) GetByID(ctx context.Context, id int64) (*models.Expenditure, error) {
	var expenditure models.Expenditure
	err := r.db.QueryRow(ctx, `
		SELECT id, purpose, amount, spent_on, bill, created_by, created_at
		FROM expenditures WHERE id = $1`, id).
		Scan(&expenditure.ID, &expenditure.Purpose, &expenditure.Amount,
			&expenditure.SpentOn, &expenditure.Bill, &expenditure.CreatedBy, &expenditure.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving expenditure: %w", err)
	}

	return &expenditure, nil
}

// Update updates an expenditure and returns affected rows
func (r *ExpenditureRepository) Update(ctx context.Context, expenditure *models.Expenditure) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE expenditures
		SET purpose = $1, amount = $2, spent_on = $3, bill = $4
		WHERE id = $5`,
		expenditure.Purpose, expenditure.Amount, expenditure.SpentOn,
		expenditure.Bill, expenditure.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating expenditure: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete deletes an expenditure and returns affected rows
func (r *ExpenditureRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM expenditures WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
