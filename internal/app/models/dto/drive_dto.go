package dto

import "time"

// CreateDriveRequest represents a placement drive creation request
type CreateDriveRequest struct {
	SessionID int64     `json:"sessionId" binding:"required"`
	CompanyID int64     `json:"companyId" binding:"required"`
	JobRole   string    `json:"jobRole" binding:"required"`
	CTC       int64     `json:"ctc" binding:"required,min=0"`
	Location  string    `json:"location" binding:"omitempty"`
	DriveDate time.Time `json:"driveDate" binding:"required"`
	IsActive  *bool     `json:"isActive" binding:"omitempty"`
}

// UpdateDriveRequest represents a placement drive update request
type UpdateDriveRequest struct {
	SessionID int64     `json:"sessionId" binding:"required"`
	CompanyID int64     `json:"companyId" binding:"required"`
	JobRole   string    `json:"jobRole" binding:"required"`
	CTC       int64     `json:"ctc" binding:"required,min=0"`
	Location  string    `json:"location" binding:"omitempty"`
	DriveDate time.Time `json:"driveDate" binding:"required"`
	IsActive  *bool     `json:"isActive" binding:"required"`
}

// ApplyRequest represents a student's application to a drive
type ApplyRequest struct {
	DriveID int64 `json:"drive_id" binding:"required"`
}

// Boundary values for the is_selected form field
const (
	SelectionYes     = "Yes"
	SelectionNo      = "No"
	SelectionPending = "Pending"
)

// UpdatePlacementStatusRequest represents the multipart body of a placement
// status update. The offer letter file is bound separately by the controller.
type UpdatePlacementStatusRequest struct {
	IsSelected string `form:"is_selected" binding:"required,oneof=Yes No Pending"`
	Role       string `form:"role" binding:"omitempty"`
	Place      string `form:"place" binding:"omitempty"`
}
