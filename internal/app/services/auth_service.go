package services

import (
	"context"
	"fmt"
	"time"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/repositories"
	"github.com/asmit/placenet/internal/pkg/apperrors"
	"github.com/asmit/placenet/internal/pkg/auth"
	"github.com/asmit/placenet/internal/pkg/dberrors"
	"github.com/asmit/placenet/internal/pkg/logger"
)

// AuthService defines the authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetCurrentUser(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
}

type authServiceImpl struct {
	userRepo    *repositories.UserRepository
	tokenRepo   *repositories.TokenRepository
	studentRepo *repositories.StudentRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	studentRepo *repositories.StudentRepository,
	jwtService *auth.JWTService,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
	}
}

// Register creates a student account in PENDING state. The account cannot log
// in until an administrator activates it.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email is already registered")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleStudent,
		Status:    models.AccountPending,
	}
	profile := &models.StudentProfile{
		RollNo:       req.RollNo,
		ProgramID:    req.ProgramID,
		DepartmentID: req.DepartmentID,
		SessionID:    req.SessionID,
		Semester:     req.Semester,
		CGPA:         req.CGPA,
		Phone:        req.Phone,
	}

	if err := s.userRepo.CreateStudentAccount(ctx, user, profile); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email is already registered")
		}
		if dberrors.IsDuplicateConstraintError(err, "student_profiles_roll_no_key") {
			return nil, apperrors.NewCustomError(apperrors.ErrRollNoExists, "Roll number is already registered")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Referenced program, department or session does not exist")
		}
		return nil, fmt.Errorf("failed to create student account: %w", err)
	}

	logger.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("Student account registered")
	return user, nil
}

// Login verifies credentials and issues a token pair. Accounts that are not
// ACTIVE are refused before any token is minted.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status != models.AccountActive {
		message := "Account is not active"
		if user.Status == models.AccountPending {
			message = "Account is awaiting administrator approval"
		}
		return nil, apperrors.NewCustomError(apperrors.ErrAccountInactive, message)
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token: the presented token is consumed and a
// fresh pair is issued.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if stored == nil {
		return nil, apperrors.ErrTokenNotFound
	}

	if time.Now().After(stored.ExpiresAt) {
		if err := s.tokenRepo.Delete(ctx, refreshToken); err != nil {
			logger.Warn().Err(err).Msg("Failed to delete expired refresh token")
		}
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.Status != models.AccountActive {
		return nil, apperrors.ErrAccountInactive
	}

	if err := s.tokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Logout invalidates a refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.Delete(ctx, refreshToken)
}

// GetCurrentUser returns the authenticated user with its role-specific profile
func (s *authServiceImpl) GetCurrentUser(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	response := &dto.ProfileResponse{User: user}

	switch user.Role {
	case models.RoleStudent:
		profile, err := s.studentRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load student profile: %w", err)
		}
		response.StudentProfile = profile
	case models.RoleAdmin:
		profile, err := s.userRepo.GetAdminProfile(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load admin profile: %w", err)
		}
		response.AdminProfile = profile
	}

	return response, nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.tokenRepo.Store(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
	}, nil
}
