package dto

import "time"

// CreateInternshipRequest represents the multipart body of an internship
// submission. The certificate file is bound separately by the controller.
type CreateInternshipRequest struct {
	CompanyID int64     `form:"companyId" binding:"required"`
	Semester  int       `form:"semester" binding:"required,min=1,max=12"`
	StartDate time.Time `form:"startDate" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time `form:"endDate" binding:"required" time_format:"2006-01-02"`
	Stipend   int64     `form:"stipend" binding:"omitempty,min=0"`
}

// UpdateInternshipRequest represents the multipart body of an internship
// update. A new certificate file, when supplied, replaces the stored one.
type UpdateInternshipRequest struct {
	CompanyID int64     `form:"companyId" binding:"required"`
	Semester  int       `form:"semester" binding:"required,min=1,max=12"`
	StartDate time.Time `form:"startDate" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time `form:"endDate" binding:"required" time_format:"2006-01-02"`
	Stipend   int64     `form:"stipend" binding:"omitempty,min=0"`
}

// InternshipFilterRequest carries list filters for internship listings
type InternshipFilterRequest struct {
	StudentID *int64
	CompanyID *int64
	Semester  *int
	Page      int
	PageSize  int
}

// RequirementRequest represents an internship requirement create/update body
type RequirementRequest struct {
	ProgramID     int64 `json:"programId" binding:"required"`
	Semester      int   `json:"semester" binding:"required,min=1,max=12"`
	RequiredCount int   `json:"requiredCount" binding:"required,min=1"`
}
