package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")
	ErrResourceInUse         = errors.New("resource is in use and cannot be deleted")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrAccountInactive    = errors.New("account is not active")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrProfileFrozen    = errors.New("profile is frozen")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRollNoExists       = errors.New("roll number already exists")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Placement errors
var (
	ErrDriveNotFound       = errors.New("drive not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this drive")
)

// Internship errors
var (
	ErrInternshipNotFound  = errors.New("internship not found")
	ErrDuplicateInternship = errors.New("internship for this company and semester already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewResourceInUseError creates an in-use error with a message
func NewResourceInUseError(message string) error {
	return &CustomError{Err: ErrResourceInUse, Message: message}
}

// Message extracts the human-readable message carried by err, falling back
// to the given default when err carries none.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
