// Package controllers contains the HTTP handlers. Controllers bind and
// validate requests, delegate to services and translate errors through the
// central error middleware.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
)

// Controllers bundles all controller instances for route registration
type Controllers struct {
	Auth         *AuthController
	User         *UserController
	Student      *StudentController
	Academic     *AcademicController
	Department   *DepartmentController
	Program      *ProgramController
	Company      *CompanyController
	Drive        *DriveController
	Placement    *PlacementController
	Internship   *InternshipController
	Requirement  *RequirementController
	Notification *NotificationController
	Expenditure  *ExpenditureController
}

// NewControllers wires every controller to its services
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		Auth:         NewAuthController(svc.Auth),
		User:         NewUserController(svc.User),
		Student:      NewStudentController(svc.Student),
		Academic:     NewAcademicController(svc.Academic),
		Department:   NewDepartmentController(svc.Department),
		Program:      NewProgramController(svc.Program),
		Company:      NewCompanyController(svc.Company),
		Drive:        NewDriveController(svc.Drive),
		Placement:    NewPlacementController(svc.Placement),
		Internship:   NewInternshipController(svc.Internship),
		Requirement:  NewRequirementController(svc.Requirement),
		Notification: NewNotificationController(svc.Notification),
		Expenditure:  NewExpenditureController(svc.Expenditure),
	}
}

// parseIDParam reads a path parameter as an int64 ID. On failure it writes a
// 400 response and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be a positive number").
			WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// parseOptionalInt64Query reads an optional int64 query parameter, returning
// nil when absent or unparsable
func parseOptionalInt64Query(ctx *gin.Context, name string) *int64 {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}
