package dto

import "time"

// ExpenditureRequest represents the multipart body of an expenditure
// create/update. The bill file is bound separately by the controller.
type ExpenditureRequest struct {
	Purpose string    `form:"purpose" binding:"required"`
	Amount  int64     `form:"amount" binding:"required,min=1"`
	SpentOn time.Time `form:"spentOn" binding:"required" time_format:"2006-01-02"`
}
