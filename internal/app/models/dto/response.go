package dto

import "time"

// APIResponse is the standard envelope for successful API responses
type APIResponse struct {
	Success    bool            `json:"success" example:"true"`
	Message    string          `json:"message,omitempty" example:"Operation completed successfully"`
	Data       interface{}     `json:"data,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
	Timestamp  time.Time       `json:"timestamp" example:"2026-04-23T12:01:05.123Z"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// SuccessResponse represents a plain message-only success body
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewSuccessResponse creates a standard success response envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a success envelope carrying only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewPagedResponse creates a success envelope with pagination metadata
func NewPagedResponse(items interface{}, pagination PaginationInfo) APIResponse {
	return APIResponse{
		Success:    true,
		Data:       items,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	}
}
