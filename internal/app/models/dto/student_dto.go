package dto

// UpdateStudentProfileRequest represents a student profile update. Students
// may edit their own unfrozen profile; administrators may edit any profile.
type UpdateStudentProfileRequest struct {
	ProgramID    int64   `json:"programId" binding:"required"`
	DepartmentID int64   `json:"departmentId" binding:"required"`
	SessionID    int64   `json:"sessionId" binding:"required"`
	Semester     int     `json:"semester" binding:"required,min=1,max=12"`
	CGPA         float64 `json:"cgpa" binding:"omitempty,min=0,max=10"`
	Phone        string  `json:"phone" binding:"omitempty"`
}

// StudentFilterRequest carries list filters for the admin student listing
type StudentFilterRequest struct {
	ProgramID *int64
	SessionID *int64
	Frozen    *bool
	Search    string // Matches name or roll number
	Page      int
	PageSize  int
}
