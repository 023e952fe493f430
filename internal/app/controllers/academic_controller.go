package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
)

// AcademicController handles academic year and session administration
type AcademicController struct {
	academicService services.AcademicService
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(academicService services.AcademicService) *AcademicController {
	return &AcademicController{academicService: academicService}
}

// CreateYear creates an academic year
// @Summary Create academic year
// @Tags academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AcademicYearRequest true "Year data"
// @Success 201 {object} dto.APIResponse{data=models.AcademicYear} "Year created"
// @Failure 409 {object} dto.ErrorResponse "Year already exists"
// @Router /academic-years [post]
func (c *AcademicController) CreateYear(ctx *gin.Context) {
	var req dto.AcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	year, err := c.academicService.CreateYear(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(year))
}

// GetAllYears lists academic years
// @Summary List academic years
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicYear} "Years"
// @Router /academic-years [get]
func (c *AcademicController) GetAllYears(ctx *gin.Context) {
	years, err := c.academicService.GetAllYears(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(years))
}

// UpdateYear updates an academic year
// @Summary Update academic year
// @Tags academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Year ID"
// @Param request body dto.AcademicYearRequest true "Year data"
// @Success 200 {object} dto.APIResponse{data=models.AcademicYear} "Year updated"
// @Router /academic-years/{id} [put]
func (c *AcademicController) UpdateYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	year, err := c.academicService.UpdateYear(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(year))
}

// DeleteYear deletes an academic year
// @Summary Delete academic year
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Year ID"
// @Success 200 {object} dto.APIResponse "Year deleted"
// @Failure 409 {object} dto.ErrorResponse "Year is in use"
// @Router /academic-years/{id} [delete]
func (c *AcademicController) DeleteYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.academicService.DeleteYear(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Academic year deleted"))
}

// CreateSession creates an academic session
// @Summary Create academic session
// @Tags academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AcademicSessionRequest true "Session data"
// @Success 201 {object} dto.APIResponse{data=models.AcademicSession} "Session created"
// @Router /academic-sessions [post]
func (c *AcademicController) CreateSession(ctx *gin.Context) {
	var req dto.AcademicSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	session, err := c.academicService.CreateSession(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(session))
}

// GetAllSessions lists academic sessions with their years
// @Summary List academic sessions
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicSession} "Sessions"
// @Router /academic-sessions [get]
func (c *AcademicController) GetAllSessions(ctx *gin.Context) {
	sessions, err := c.academicService.GetAllSessions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sessions))
}

// UpdateSession updates an academic session
// @Summary Update academic session
// @Tags academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param request body dto.AcademicSessionRequest true "Session data"
// @Success 200 {object} dto.APIResponse{data=models.AcademicSession} "Session updated"
// @Router /academic-sessions/{id} [put]
func (c *AcademicController) UpdateSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AcademicSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	session, err := c.academicService.UpdateSession(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(session))
}

// DeleteSession deletes an academic session
// @Summary Delete academic session
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse "Session deleted"
// @Failure 409 {object} dto.ErrorResponse "Session is in use"
// @Router /academic-sessions/{id} [delete]
func (c *AcademicController) DeleteSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.academicService.DeleteSession(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Academic session deleted"))
}
