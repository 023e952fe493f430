package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/repositories"
	"github.com/asmit/placenet/internal/pkg/auth"
)

// Context keys set by the middleware chain
const (
	ContextUserID    = "userID"
	ContextEmail     = "email"
	ContextRole      = "roleType"
	ContextStudentID = "studentID"
	ContextFrozen    = "profileFrozen"
)

// AccessTokenCookie is the fallback cookie checked when no Authorization
// header is present
const AccessTokenCookie = "access_token"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	studentRepo *repositories.StudentRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, studentRepo *repositories.StudentRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		studentRepo: studentRepo,
	}
}

// JWTAuth validates the access token from the Authorization header or the
// access_token cookie and stores the claims on the request context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			extracted, err := auth.ExtractBearerToken(authHeader)
			if err != nil {
				abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Invalid token format")
				return
			}
			tokenString = extracted
		} else if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired rejects requests whose authenticated role differs from the
// required one. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != string(requiredRole) {
			detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}

		c.Next()
	}
}

// StudentContext resolves the student profile behind a student-role request
// and stores its ID and frozen flag on the context. Admin requests pass
// through untouched.
func (m *AuthMiddleware) StudentContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		if roleStr, ok := role.(string); !ok || roleStr != string(models.RoleStudent) {
			c.Next()
			return
		}

		userID, ok := c.Get(ContextUserID)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		profile, err := m.studentRepo.GetByUserID(c.Request.Context(), userID.(int64))
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
			return
		}
		if profile == nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student profile not found")
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(detail))
			return
		}

		c.Set(ContextStudentID, profile.ID)
		c.Set(ContextFrozen, profile.IsFrozen)

		c.Next()
	}
}

// ProfileUnfrozen rejects mutations from students whose profile is frozen.
// Admin requests pass through. Must run after StudentContext.
func (m *AuthMiddleware) ProfileUnfrozen() gin.HandlerFunc {
	return func(c *gin.Context) {
		frozen, exists := c.Get(ContextFrozen)
		if exists && frozen.(bool) {
			detail := dto.NewErrorDetail(dto.ErrorCodeProfileFrozen, "Profile is frozen").
				WithDetails("Frozen profiles cannot be modified; contact the placement cell")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}

		c.Next()
	}
}

// GetUserID reads the authenticated user ID from the context
func GetUserID(c *gin.Context) int64 {
	userID, _ := c.Get(ContextUserID)
	id, _ := userID.(int64)
	return id
}

// GetStudentID reads the resolved student profile ID from the context;
// zero for non-student requests
func GetStudentID(c *gin.Context) int64 {
	studentID, _ := c.Get(ContextStudentID)
	id, _ := studentID.(int64)
	return id
}

// IsAdmin reports whether the authenticated request carries the admin role
func IsAdmin(c *gin.Context) bool {
	role, _ := c.Get(ContextRole)
	roleStr, _ := role.(string)
	return roleStr == string(models.RoleAdmin)
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
