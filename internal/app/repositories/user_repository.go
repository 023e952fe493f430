package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/db"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateStudentAccount creates a user row and its student profile inside a
// single transaction so a failed profile insert never leaves an orphan
// account behind.
func (r *UserRepository) CreateStudentAccount(ctx context.Context, user *models.User, profile *models.StudentProfile) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (email, password, first_name, last_name, role, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at`,
			user.Email, user.Password, user.FirstName, user.LastName, user.Role, user.Status,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return err
		}

		profile.UserID = user.ID
		return tx.QueryRow(ctx, `
			INSERT INTO student_profiles (user_id, roll_no, program_id, department_id, session_id, semester, cgpa, phone)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, updated_at`,
			profile.UserID, profile.RollNo, profile.ProgramID, profile.DepartmentID,
			profile.SessionID, profile.Semester, profile.CGPA, profile.Phone,
		).Scan(&profile.ID, &profile.UpdatedAt)
	})
}

// CreateAdminAccount creates an administrator account with its profile
func (r *UserRepository) CreateAdminAccount(ctx context.Context, user *models.User, profile *models.AdminProfile) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (email, password, first_name, last_name, role, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at`,
			user.Email, user.Password, user.FirstName, user.LastName, user.Role, user.Status,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return err
		}

		profile.UserID = user.ID
		return tx.QueryRow(ctx, `
			INSERT INTO admin_profiles (user_id, designation, phone)
			VALUES ($1, $2, $3)
			RETURNING id`,
			profile.UserID, profile.Designation, profile.Phone,
		).Scan(&profile.ID)
	})
}

// GetByEmail retrieves a user by email; returns nil when no row matches
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, first_name, last_name, role, status, created_at, updated_at
		FROM users
		WHERE email = $1`, email,
	).Scan(&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a user by ID; returns nil when no row matches
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, first_name, last_name, role, status, created_at, updated_at
		FROM users
		WHERE id = $1`, id,
	).Scan(&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetAll retrieves users, optionally filtered by status, with pagination
func (r *UserRepository) GetAll(ctx context.Context, status *models.AccountStatus, offset, limit int) ([]*models.User, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM users WHERE ($1::text IS NULL OR status = $1)`
	if err := r.db.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, email, password, first_name, last_name, role, status, created_at, updated_at
		FROM users
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`, status, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
			&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateStatus updates an account's activation status and returns the number
// of affected rows
func (r *UserRepository) UpdateStatus(ctx context.Context, id int64, status models.AccountStatus) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return 0, fmt.Errorf("error updating account status: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// CountAdmins returns the number of administrator accounts
func (r *UserRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, models.RoleAdmin).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting admins: %w", err)
	}
	return count, nil
}

// GetAdminProfile retrieves the admin profile for a user; nil when none exists
func (r *UserRepository) GetAdminProfile(ctx context.Context, userID int64) (*models.AdminProfile, error) {
	var profile models.AdminProfile
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, designation, phone
		FROM admin_profiles
		WHERE user_id = $1`, userID,
	).Scan(&profile.ID, &profile.UserID, &profile.Designation, &profile.Phone)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin profile: %w", err)
	}

	return &profile, nil
}

// UpdateAdminProfile updates an admin profile and returns affected rows
func (r *UserRepository) UpdateAdminProfile(ctx context.Context, userID int64, designation, phone string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE admin_profiles SET designation = $1, phone = $2 WHERE user_id = $3`,
		designation, phone, userID)
	if err != nil {
		return 0, fmt.Errorf("error updating admin profile: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
