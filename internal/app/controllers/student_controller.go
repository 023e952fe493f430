package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
	"github.com/asmit/placenet/internal/pkg/helpers"
)

// StudentController handles student profile operations including the
// freeze/unfreeze gate
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetAll lists active students for the admin panel
// @Summary List students
// @Description Lists active students filtered by program, session, frozen flag or a name/roll number search
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param programId query int false "Filter by program"
// @Param sessionId query int false "Filter by session"
// @Param frozen query bool false "Filter by frozen flag"
// @Param search query string false "Name or roll number search"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentProfile} "Students"
// @Router /students [get]
func (c *StudentController) GetAll(ctx *gin.Context) {
	filter := &dto.StudentFilterRequest{
		ProgramID: parseOptionalInt64Query(ctx, "programId"),
		SessionID: parseOptionalInt64Query(ctx, "sessionId"),
		Search:    ctx.Query("search"),
	}
	if raw := ctx.Query("frozen"); raw != "" {
		if frozen, err := strconv.ParseBool(raw); err == nil {
			filter.Frozen = &frozen
		}
	}
	filter.Page, filter.PageSize = helpers.ParsePaginationParams(ctx)

	students, total, err := c.studentService.GetAll(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(students,
		helpers.NewPaginationInfo(total, filter.Page, filter.PageSize)))
}

// GetByID returns one student profile
// @Summary Get student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student profile ID"
// @Success 200 {object} dto.APIResponse{data=models.StudentProfile} "Student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if !c.authorizeStudentAccess(ctx, id) {
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// Update rewrites a student profile
// @Summary Update student profile
// @Description Students edit their own unfrozen profile; administrators edit any profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student profile ID"
// @Param request body dto.UpdateStudentProfileRequest true "Profile data"
// @Success 200 {object} dto.APIResponse{data=models.StudentProfile} "Profile updated"
// @Failure 403 {object} dto.ErrorResponse "Forbidden or frozen"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if !c.authorizeStudentAccess(ctx, id) {
		return
	}

	var req dto.UpdateStudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateProfile(ctx.Request.Context(), id, &req, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// Freeze marks a profile as final
// @Summary Freeze student profile
// @Description Freezes a profile after verifying no pending applications remain and every internship requirement of the program is met
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student profile ID"
// @Success 200 {object} dto.APIResponse "Profile frozen"
// @Failure 400 {object} dto.ErrorResponse "Freeze requirements not met"
// @Failure 409 {object} dto.ErrorResponse "Already frozen"
// @Router /students/{id}/freeze [put]
func (c *StudentController) Freeze(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if !c.authorizeStudentAccess(ctx, id) {
		return
	}

	if err := c.studentService.FreezeProfile(ctx.Request.Context(), id, middleware.GetUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile frozen"))
}

// Unfreeze reopens a frozen profile. Admin only.
// @Summary Unfreeze student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student profile ID"
// @Success 200 {object} dto.APIResponse "Profile unfrozen"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/unfreeze [put]
func (c *StudentController) Unfreeze(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.UnfreezeProfile(ctx.Request.Context(), id, middleware.GetUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile unfrozen"))
}

// authorizeStudentAccess allows admins through and restricts students to
// their own profile. Writes the 403 itself and returns false on denial.
func (c *StudentController) authorizeStudentAccess(ctx *gin.Context, profileID int64) bool {
	if middleware.IsAdmin(ctx) || middleware.GetStudentID(ctx) == profileID {
		return true
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
		WithDetails("You may only access your own profile")
	ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(detail))
	return false
}
