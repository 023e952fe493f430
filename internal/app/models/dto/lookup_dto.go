package dto

// AcademicYearRequest represents an academic year create/update body
type AcademicYearRequest struct {
	Year string `json:"year" binding:"required" example:"2025"`
}

// AcademicSessionRequest represents an academic session create/update body
type AcademicSessionRequest struct {
	Name   string `json:"name" binding:"required" example:"2025-26 Odd"`
	YearID int64  `json:"yearId" binding:"required"`
}

// DepartmentRequest represents a department create/update body
type DepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// ProgramRequest represents a program create/update body
type ProgramRequest struct {
	Name          string `json:"name" binding:"required"`
	DepartmentID  int64  `json:"departmentId" binding:"required"`
	DurationYears int    `json:"durationYears" binding:"required,min=1,max=6"`
}

// CompanyTypeRequest represents a company type create/update body
type CompanyTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CompanyRequest represents a company create/update body
type CompanyRequest struct {
	Name          string `json:"name" binding:"required"`
	CompanyTypeID int64  `json:"companyTypeId" binding:"required"`
	Website       string `json:"website" binding:"omitempty"`
	ContactEmail  string `json:"contactEmail" binding:"omitempty,email"`
}

// NotificationRequest represents a notification create/update body
type NotificationRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}
