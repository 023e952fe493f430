package models

// AcademicYear defines an academic year based on the 'academic_years' table
type AcademicYear struct {
	ID   int64  `json:"id" db:"id"`
	Year string `json:"year" db:"year" example:"2025"`
}

// AcademicSession defines an academic session based on the 'academic_sessions' table
type AcademicSession struct {
	ID     int64         `json:"id" db:"id"`
	Name   string        `json:"name" db:"name" example:"2025-26 Odd"`
	YearID int64         `json:"yearId" db:"year_id"`
	Year   *AcademicYear `json:"academicYear,omitempty"` // Relation, no db tag
}

// Department defines the department model based on the 'departments' table
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" example:"Computer Science"`
	Code string `json:"code" db:"code" example:"CSE"`
}

// Program defines a degree program based on the 'programs' table
type Program struct {
	ID            int64       `json:"id" db:"id"`
	Name          string      `json:"name" db:"name" example:"B.Tech CSE"`
	DepartmentID  int64       `json:"departmentId" db:"department_id"`
	DurationYears int         `json:"durationYears" db:"duration_years"`
	Department    *Department `json:"department,omitempty"` // Relation, no db tag
}
