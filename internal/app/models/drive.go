package models

import "time"

// PlacementDrive defines a placement opportunity based on the 'placement_drives' table.
// Inactive drives are hidden from students and cannot be applied to.
type PlacementDrive struct {
	ID        int64            `json:"id" db:"id"`
	SessionID int64            `json:"sessionId" db:"session_id"`
	CompanyID int64            `json:"companyId" db:"company_id"`
	JobRole   string           `json:"jobRole" db:"job_role" example:"Software Engineer"`
	CTC       int64            `json:"ctc" db:"ctc" example:"600000"`
	Location  string           `json:"location" db:"location"`
	DriveDate time.Time        `json:"driveDate" db:"drive_date"`
	IsActive  bool             `json:"isActive" db:"is_active"`
	Company   *Company         `json:"company,omitempty"` // Relation, no db tag
	Session   *AcademicSession `json:"session,omitempty"` // Relation, no db tag
}

// PlacementApplication defines one student's application to one drive, based
// on the 'placement_applications' table. CTC is a snapshot taken from the
// drive at apply time; later drive edits never change it. JobRole, Place and
// OfferLetter are only meaningful while Status is SELECTED.
type PlacementApplication struct {
	ID          int64             `json:"id" db:"id"`
	StudentID   int64             `json:"studentId" db:"student_id"`
	DriveID     int64             `json:"driveId" db:"drive_id"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CTC         int64             `json:"ctc" db:"ctc"`
	JobRole     string            `json:"jobRole,omitempty" db:"job_role"`
	Place       string            `json:"place,omitempty" db:"place"`
	OfferLetter string            `json:"offerLetter,omitempty" db:"offer_letter"`
	AppliedAt   time.Time         `json:"appliedAt" db:"applied_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`
	Drive       *PlacementDrive   `json:"drive,omitempty"` // Relation, no db tag
}
