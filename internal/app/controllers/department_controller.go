package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
)

// DepartmentController handles department administration
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// Create creates a department
// @Summary Create department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DepartmentRequest true "Department data"
// @Success 201 {object} dto.APIResponse{data=models.Department} "Department created"
// @Failure 409 {object} dto.ErrorResponse "Department already exists"
// @Router /departments [post]
func (c *DepartmentController) Create(ctx *gin.Context) {
	var req dto.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	department, err := c.departmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(department))
}

// GetAll lists departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Department} "Departments"
// @Router /departments [get]
func (c *DepartmentController) GetAll(ctx *gin.Context) {
	departments, err := c.departmentService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments))
}

// GetByID returns one department
// @Summary Get department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	department, err := c.departmentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department))
}

// Update updates a department
// @Summary Update department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.DepartmentRequest true "Department data"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department updated"
// @Router /departments/{id} [put]
func (c *DepartmentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	department, err := c.departmentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department))
}

// Delete deletes a department
// @Summary Delete department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse "Department deleted"
// @Failure 409 {object} dto.ErrorResponse "Department is in use"
// @Router /departments/{id} [delete]
func (c *DepartmentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.departmentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Department deleted"))
}
