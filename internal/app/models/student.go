package models

import "time"

// StudentProfile defines the student profile based on the 'student_profiles' table.
// A frozen profile rejects all further self-service mutations until an
// administrator unfreezes it.
type StudentProfile struct {
	ID           int64            `json:"id" db:"id"`
	UserID       int64            `json:"userId" db:"user_id"`
	RollNo       string           `json:"rollNo" db:"roll_no"`
	ProgramID    int64            `json:"programId" db:"program_id"`
	DepartmentID int64            `json:"departmentId" db:"department_id"`
	SessionID    int64            `json:"sessionId" db:"session_id"`
	Semester     int              `json:"semester" db:"semester"`
	CGPA         float64          `json:"cgpa" db:"cgpa"`
	Phone        string           `json:"phone" db:"phone"`
	IsFrozen     bool             `json:"isFrozen" db:"is_frozen"`
	UpdatedBy    *int64           `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt    time.Time        `json:"updatedAt" db:"updated_at"`
	User         *User            `json:"user,omitempty"`    // Relation, no db tag
	Program      *Program         `json:"program,omitempty"` // Relation, no db tag
	Session      *AcademicSession `json:"session,omitempty"` // Relation, no db tag
}
