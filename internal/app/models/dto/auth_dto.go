package dto

import "github.com/asmit/placenet/internal/app/models"

// RegisterRequest represents a student registration request. The created
// account stays PENDING until an administrator activates it.
type RegisterRequest struct {
	Email        string  `json:"email" binding:"required,email" example:"ravi@college.edu"`
	Password     string  `json:"password" binding:"required,min=8" example:"s3cretpass"`
	FirstName    string  `json:"firstName" binding:"required" example:"Ravi"`
	LastName     string  `json:"lastName" binding:"required" example:"Kumar"`
	RollNo       string  `json:"rollNo" binding:"required" example:"21CS042"`
	ProgramID    int64   `json:"programId" binding:"required" example:"1"`
	DepartmentID int64   `json:"departmentId" binding:"required" example:"1"`
	SessionID    int64   `json:"sessionId" binding:"required" example:"1"`
	Semester     int     `json:"semester" binding:"required,min=1,max=12" example:"5"`
	CGPA         float64 `json:"cgpa" binding:"omitempty,min=0,max=10" example:"8.2"`
	Phone        string  `json:"phone" binding:"omitempty" example:"9876543210"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType" example:"Bearer"`
	ExpiresIn    int    `json:"expiresIn" example:"3600"`
}

// ProfileResponse bundles a user with its role-specific profile
type ProfileResponse struct {
	User           *models.User           `json:"user"`
	StudentProfile *models.StudentProfile `json:"studentProfile,omitempty"`
	AdminProfile   *models.AdminProfile   `json:"adminProfile,omitempty"`
}

// UpdateAccountStatusRequest represents an admin account activation decision
type UpdateAccountStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE REJECTED"`
}

// UpdateAdminProfileRequest represents an admin profile update
type UpdateAdminProfileRequest struct {
	Designation string `json:"designation" binding:"required"`
	Phone       string `json:"phone" binding:"omitempty"`
}
