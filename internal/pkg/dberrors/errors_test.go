package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUniqueViolation, KindOf(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, KindForeignKeyViolation, KindOf(&pgconn.PgError{Code: "23503"}))
	assert.Equal(t, KindOther, KindOf(&pgconn.PgError{Code: "42601"}))
	assert.Equal(t, KindOther, KindOf(errors.New("plain error")))
	assert.Equal(t, KindOther, KindOf(nil))
}

func TestKindOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("error creating row: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, IsUniqueViolation(wrapped))
	assert.False(t, IsForeignKeyViolation(wrapped))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	assert.True(t, IsDuplicateConstraintError(err, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(err, "student_profiles_roll_no_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("other"), "users_email_key"))
}
