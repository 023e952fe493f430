// Package dberrors maps PostgreSQL driver errors to a closed set of error
// kinds so no raw error codes leak past the repository boundary.
package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a database error.
type Kind int

const (
	KindOther Kind = iota
	KindUniqueViolation
	KindForeignKeyViolation
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// KindOf returns the Kind of a database error.
func KindOf(err error) Kind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindOther
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return KindUniqueViolation
	case codeForeignKeyViolation:
		return KindForeignKeyViolation
	}
	return KindOther
}

// IsUniqueViolation checks if the error is a PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	return KindOf(err) == KindUniqueViolation
}

// IsDuplicateConstraintError checks if the error is a unique violation
// on a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation checks if the error is a PostgreSQL referential
// integrity violation (insert referencing a missing row, or delete of a
// row that dependent rows still reference).
func IsForeignKeyViolation(err error) bool {
	return KindOf(err) == KindForeignKeyViolation
}
