package models

import "time"

// Notification defines an announcement based on the 'notifications' table
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Expenditure defines a placement-cell expense based on the 'expenditures'
// table. Bill holds the attached bill's storage path.
type Expenditure struct {
	ID        int64     `json:"id" db:"id"`
	Purpose   string    `json:"purpose" db:"purpose"`
	Amount    int64     `json:"amount" db:"amount"`
	SpentOn   time.Time `json:"spentOn" db:"spent_on"`
	Bill      string    `json:"bill,omitempty" db:"bill"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
