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

// InternshipController handles internship records and their certificates
type InternshipController struct {
	internshipService services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService services.InternshipService) *InternshipController {
	return &InternshipController{internshipService: internshipService}
}

// Create records a completed internship for the authenticated student
// @Summary Record internship
// @Description Records an internship with a certificate file (jpeg, jpg, png or pdf)
// @Tags internships
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param companyId formData int true "Company ID"
// @Param semester formData int true "Semester"
// @Param startDate formData string true "Start date (YYYY-MM-DD)"
// @Param endDate formData string true "End date (YYYY-MM-DD)"
// @Param stipend formData int false "Monthly stipend"
// @Param certificate formData file true "Completion certificate"
// @Success 201 {object} dto.APIResponse{data=models.Internship} "Internship recorded"
// @Failure 400 {object} dto.ErrorResponse "Missing certificate, invalid data or file type"
// @Failure 409 {object} dto.ErrorResponse "Duplicate internship"
// @Router /internships [post]
func (c *InternshipController) Create(ctx *gin.Context) {
	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	certificate, err := ctx.FormFile("certificate")
	if err != nil && err != http.ErrMissingFile {
		middleware.HandleValidationError(ctx, err)
		return
	}

	internship, err := c.internshipService.Create(ctx.Request.Context(), middleware.GetStudentID(ctx), &req, certificate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(internship))
}

// GetAll lists internships. Students see their own records; administrators
// may filter across all students.
// @Summary List internships
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student (admin only)"
// @Param companyId query int false "Filter by company"
// @Param semester query int false "Filter by semester"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Internship} "Internships"
// @Router /internships [get]
func (c *InternshipController) GetAll(ctx *gin.Context) {
	filter := &dto.InternshipFilterRequest{
		CompanyID: parseOptionalInt64Query(ctx, "companyId"),
	}
	if raw := ctx.Query("semester"); raw != "" {
		if semester, err := strconv.Atoi(raw); err == nil {
			filter.Semester = &semester
		}
	}

	if middleware.IsAdmin(ctx) {
		filter.StudentID = parseOptionalInt64Query(ctx, "studentId")
	} else {
		studentID := middleware.GetStudentID(ctx)
		filter.StudentID = &studentID
	}
	filter.Page, filter.PageSize = helpers.ParsePaginationParams(ctx)

	internships, total, err := c.internshipService.GetAll(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(internships,
		helpers.NewPaginationInfo(total, filter.Page, filter.PageSize)))
}

// GetByID returns one internship
// @Summary Get internship
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=models.Internship} "Internship"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id} [get]
func (c *InternshipController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.internshipService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !middleware.IsAdmin(ctx) && internship.StudentID != middleware.GetStudentID(ctx) {
		detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("You may only view your own internships")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(detail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internship))
}

// Update rewrites an internship record
// @Summary Update internship
// @Description Updates an internship; a new certificate replaces the stored one
// @Tags internships
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Param companyId formData int true "Company ID"
// @Param semester formData int true "Semester"
// @Param startDate formData string true "Start date (YYYY-MM-DD)"
// @Param endDate formData string true "End date (YYYY-MM-DD)"
// @Param stipend formData int false "Monthly stipend"
// @Param certificate formData file false "Completion certificate"
// @Success 200 {object} dto.APIResponse{data=models.Internship} "Internship updated"
// @Failure 403 {object} dto.ErrorResponse "Not the record owner"
// @Router /internships/{id} [put]
func (c *InternshipController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	certificate, err := ctx.FormFile("certificate")
	if err != nil && err != http.ErrMissingFile {
		middleware.HandleValidationError(ctx, err)
		return
	}

	internship, err := c.internshipService.Update(ctx.Request.Context(), id, actorStudentID(ctx), &req, certificate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internship))
}

// Delete removes an internship record and its certificate
// @Summary Delete internship
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse "Internship deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the record owner"
// @Router /internships/{id} [delete]
func (c *InternshipController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.internshipService.Delete(ctx.Request.Context(), id, actorStudentID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship deleted"))
}

// actorStudentID returns the ownership restriction for the request: the
// student's own profile ID, or nil for administrators
func actorStudentID(ctx *gin.Context) *int64 {
	if middleware.IsAdmin(ctx) {
		return nil
	}
	studentID := middleware.GetStudentID(ctx)
	return &studentID
}
