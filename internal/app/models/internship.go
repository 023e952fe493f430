package models

import "time"

// Internship defines a completed internship record based on the 'internships'
// table. (student_id, company_id, semester) is unique.
type Internship struct {
	ID          int64           `json:"id" db:"id"`
	StudentID   int64           `json:"studentId" db:"student_id"`
	CompanyID   int64           `json:"companyId" db:"company_id"`
	Semester    int             `json:"semester" db:"semester"`
	StartDate   time.Time       `json:"startDate" db:"start_date"`
	EndDate     time.Time       `json:"endDate" db:"end_date"`
	Stipend     int64           `json:"stipend" db:"stipend"`
	Certificate string          `json:"certificate" db:"certificate"`
	Company     *Company        `json:"company,omitempty"` // Relation, no db tag
	Student     *StudentProfile `json:"student,omitempty"` // Relation, no db tag
}

// InternshipRequirement defines the minimum completed-internship count for a
// (program, semester) pair, based on the 'internship_requirements' table.
type InternshipRequirement struct {
	ID            int64    `json:"id" db:"id"`
	ProgramID     int64    `json:"programId" db:"program_id"`
	Semester      int      `json:"semester" db:"semester"`
	RequiredCount int      `json:"requiredCount" db:"required_count"`
	Program       *Program `json:"program,omitempty"` // Relation, no db tag
}
