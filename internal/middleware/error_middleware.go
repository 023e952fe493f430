package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/pkg/apperrors"
	"github.com/asmit/placenet/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Every controller
// funnels its service errors through here so status codes and bodies stay
// uniform across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrDriveNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrInternshipNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound,
			apperrors.Message(err, "Resource not found"))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrRollNoExists),
		errors.Is(err, apperrors.ErrAlreadyApplied),
		errors.Is(err, apperrors.ErrDuplicateInternship),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists,
			apperrors.Message(err, "Resource already exists"))

	case errors.Is(err, apperrors.ErrResourceInUse):
		respond(c, http.StatusBadRequest, dto.ErrorCodeResourceInUse,
			apperrors.Message(err, "Resource is in use and cannot be deleted"))

	case errors.Is(err, apperrors.ErrProfileFrozen):
		respond(c, http.StatusForbidden, dto.ErrorCodeProfileFrozen,
			apperrors.Message(err, "Profile is frozen"))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden,
			apperrors.Message(err, "Permission denied"))

	case errors.Is(err, apperrors.ErrAccountInactive):
		respond(c, http.StatusForbidden, dto.ErrorCodeAccountInactive,
			apperrors.Message(err, "Account is not active"))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenNotFound):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed,
			apperrors.Message(err, "Validation failed"))

	case errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed,
			apperrors.Message(err, "Bad request"))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError responds to a request binding failure
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
