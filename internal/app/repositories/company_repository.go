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

// CompanyRepository handles database operations for companies and their types
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// CreateType creates a new company type
func (r *CompanyRepository) CreateType(ctx context.Context, companyType *models.CompanyType) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO company_types (name) VALUES ($1) RETURNING id`,
		companyType.Name).Scan(&companyType.ID)
}

// GetAllTypes retrieves all company types
func (r *CompanyRepository) GetAllTypes(ctx context.Context) ([]*models.CompanyType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM company_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.CompanyType
	for rows.Next() {
		var companyType models.CompanyType
		if err := rows.Scan(&companyType.ID, &companyType.Name); err != nil {
			return nil, err
		}
		types = append(types, &companyType)
	}

	return types, rows.Err()
}

// GetTypeByID retrieves a company type by ID; nil when no row matches
func (r *CompanyRepository) GetTypeByID(ctx context.Context, id int64) (*models.CompanyType, error) {
	var companyType models.CompanyType
	err := r.db.QueryRow(ctx, `SELECT id, name FROM company_types WHERE id = $1`, id).
		Scan(&companyType.ID, &companyType.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving company type: %w", err)
	}

	return &companyType, nil
}

// UpdateType updates a company type and returns affected rows
func (r *CompanyRepository) UpdateType(ctx context.Context, companyType *models.CompanyType) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE company_types SET name = $1 WHERE id = $2`,
		companyType.Name, companyType.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating company type: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteType deletes a company type and returns affected rows
func (r *CompanyRepository) DeleteType(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM company_types WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO companies (name, company_type_id, website, contact_email)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		company.Name, company.CompanyTypeID, company.Website, company.ContactEmail).
		Scan(&company.ID)
}

// GetAll retrieves companies with their types, optionally filtered by type and
// a name search, with pagination
func (r *CompanyRepository) GetAll(ctx context.Context, typeID *int64, search string, offset, limit int) ([]*models.Company, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if typeID != nil {
		conditions = append(conditions, "c.company_type_id = $"+strconv.Itoa(argPos))
		args = append(args, *typeID)
		argPos++
	}
	if search != "" {
		conditions = append(conditions, "c.name ILIKE $"+strconv.Itoa(argPos))
		args = append(args, "%"+search+"%")
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM companies c ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting companies: %w", err)
	}

	query := `
		SELECT c.id, c.name, c.company_type_id, c.website, c.contact_email, t.id, t.name
		FROM companies c
		JOIN company_types t ON t.id = c.company_type_id ` + where +
		fmt.Sprintf(" ORDER BY c.name OFFSET $%d LIMIT $%d", argPos, argPos+1)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		var company models.Company
		var companyType models.CompanyType
		if err := rows.Scan(&company.ID, &company.Name, &company.CompanyTypeID,
			&company.Website, &company.ContactEmail, &companyType.ID, &companyType.Name); err != nil {
			return nil, 0, err
		}
		company.Type = &companyType
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// GetByID retrieves a company with its type; nil when no row matches
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	var company models.Company
	var companyType models.CompanyType
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.name, c.company_type_id, c.website, c.contact_email, t.id, t.name
		FROM companies c
		JOIN company_types t ON t.id = c.company_type_id
		WHERE c.id = $1`, id).
		Scan(&company.ID, &company.Name, &company.CompanyTypeID,
			&company.Website, &company.ContactEmail, &companyType.ID, &companyType.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}

	company.Type = &companyType
	return &company, nil
}

// Update updates a company and returns affected rows
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE companies
		SET name = $1, company_type_id = $2, website = $3, contact_email = $4
		WHERE id = $5`,
		company.Name, company.CompanyTypeID, company.Website, company.ContactEmail, company.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating company: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete deletes a company and returns affected rows
func (r *CompanyRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
