package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
)

// RequirementController handles internship requirement administration
type RequirementController struct {
	requirementService services.RequirementService
}

// NewRequirementController creates a new RequirementController
func NewRequirementController(requirementService services.RequirementService) *RequirementController {
	return &RequirementController{requirementService: requirementService}
}

// Create defines a requirement for a (program, semester) pair
// @Summary Create internship requirement
// @Tags requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RequirementRequest true "Requirement data"
// @Success 201 {object} dto.APIResponse{data=models.InternshipRequirement} "Requirement created"
// @Failure 409 {object} dto.ErrorResponse "Requirement already exists"
// @Router /internship-requirements [post]
func (c *RequirementController) Create(ctx *gin.Context) {
	var req dto.RequirementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	requirement, err := c.requirementService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(requirement))
}

// GetAll lists all requirements
// @Summary List internship requirements
// @Tags requirements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.InternshipRequirement} "Requirements"
// @Router /internship-requirements [get]
func (c *RequirementController) GetAll(ctx *gin.Context) {
	requirements, err := c.requirementService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requirements))
}

// Update rewrites a requirement
// @Summary Update internship requirement
// @Tags requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requirement ID"
// @Param request body dto.RequirementRequest true "Requirement data"
// @Success 200 {object} dto.APIResponse{data=models.InternshipRequirement} "Requirement updated"
// @Router /internship-requirements/{id} [put]
func (c *RequirementController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RequirementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	requirement, err := c.requirementService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requirement))
}

// Delete removes a requirement
// @Summary Delete internship requirement
// @Tags requirements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requirement ID"
// @Success 200 {object} dto.APIResponse "Requirement deleted"
// @Router /internship-requirements/{id} [delete]
func (c *RequirementController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.requirementService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Requirement deleted"))
}
