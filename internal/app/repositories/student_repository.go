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

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentSelectColumns = `
	sp.id, sp.user_id, sp.roll_no, sp.program_id, sp.department_id, sp.session_id,
	sp.semester, sp.cgpa, sp.phone, sp.is_frozen, sp.updated_by, sp.updated_at,
	u.id, u.email, u.first_name, u.last_name, u.role, u.status, u.created_at, u.updated_at`

func scanStudent(row pgx.Row) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	var user models.User
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.RollNo, &profile.ProgramID,
		&profile.DepartmentID, &profile.SessionID, &profile.Semester, &profile.CGPA,
		&profile.Phone, &profile.IsFrozen, &profile.UpdatedBy, &profile.UpdatedAt,
		&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	profile.User = &user
	return &profile, nil
}

// GetByID retrieves a student profile by profile ID; nil when no row matches
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.StudentProfile, error) {
	query := `
		SELECT ` + studentSelectColumns + `
		FROM student_profiles sp
		JOIN users u ON u.id = sp.user_id
		WHERE sp.id = $1`

	profile, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return profile, nil
}

// GetByUserID retrieves a student profile by its account ID; nil when no row matches
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	query := `
		SELECT ` + studentSelectColumns + `
		FROM student_profiles sp
		JOIN users u ON u.id = sp.user_id
		WHERE sp.user_id = $1`

	profile, err := scanStudent(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return profile, nil
}

// GetAll retrieves student profiles matching the filter, with pagination
func (r *StudentRepository) GetAll(ctx context.Context, filter *dto.StudentFilterRequest, offset, limit int) ([]*models.StudentProfile, int64, error) {
	conditions := []string{"u.status = 'ACTIVE'"}
	args := []interface{}{}
	argPos := 1

	if filter.ProgramID != nil {
		conditions = append(conditions, "sp.program_id = $"+strconv.Itoa(argPos))
		args = append(args, *filter.ProgramID)
		argPos++
	}
	if filter.SessionID != nil {
		conditions = append(conditions, "sp.session_id = $"+strconv.Itoa(argPos))
		args = append(args, *filter.SessionID)
		argPos++
	}
	if filter.Frozen != nil {
		conditions = append(conditions, "sp.is_frozen = $"+strconv.Itoa(argPos))
		args = append(args, *filter.Frozen)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR sp.roll_no ILIKE $%d)",
			argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM student_profiles sp
		JOIN users u ON u.id = sp.user_id ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := `
		SELECT ` + studentSelectColumns + `
		FROM student_profiles sp
		JOIN users u ON u.id = sp.user_id ` + where +
		fmt.Sprintf(" ORDER BY sp.roll_no OFFSET $%d LIMIT $%d", argPos, argPos+1)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []*models.StudentProfile
	for rows.Next() {
		profile, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// Update updates the mutable profile fields, stamping the modifier, and
// returns the number of affected rows
func (r *StudentRepository) Update(ctx context.Context, profile *models.StudentProfile, updatedBy int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE student_profiles
		SET program_id = $1, department_id = $2, session_id = $3, semester = $4,
		    cgpa = $5, phone = $6, updated_by = $7, updated_at = NOW()
		WHERE id = $8`,
		profile.ProgramID, profile.DepartmentID, profile.SessionID, profile.Semester,
		profile.CGPA, profile.Phone, updatedBy, profile.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating student profile: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// SetFrozen flips the frozen flag, stamping the modifier and timestamp, and
// returns the number of affected rows
func (r *StudentRepository) SetFrozen(ctx context.Context, id int64, frozen bool, updatedBy int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE student_profiles
		SET is_frozen = $1, updated_by = $2, updated_at = NOW()
		WHERE id = $3`,
		frozen, updatedBy, id)
	if err != nil {
		return 0, fmt.Errorf("error updating frozen flag: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
