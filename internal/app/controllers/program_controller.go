package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
)

// ProgramController handles degree program administration
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{programService: programService}
}

// Create creates a program
// @Summary Create program
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProgramRequest true "Program data"
// @Success 201 {object} dto.APIResponse{data=models.Program} "Program created"
// @Router /programs [post]
func (c *ProgramController) Create(ctx *gin.Context) {
	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	program, err := c.programService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(program))
}

// GetAll lists programs
// @Summary List programs
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param departmentId query int false "Filter by department"
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs"
// @Router /programs [get]
func (c *ProgramController) GetAll(ctx *gin.Context) {
	programs, err := c.programService.GetAll(ctx.Request.Context(), parseOptionalInt64Query(ctx, "departmentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(programs))
}

// GetByID returns one program
// @Summary Get program
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /programs/{id} [get]
func (c *ProgramController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	program, err := c.programService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(program))
}

// Update updates a program
// @Summary Update program
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Param request body dto.ProgramRequest true "Program data"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program updated"
// @Router /programs/{id} [put]
func (c *ProgramController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	program, err := c.programService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(program))
}

// Delete deletes a program
// @Summary Delete program
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Success 200 {object} dto.APIResponse "Program deleted"
// @Failure 409 {object} dto.ErrorResponse "Program is in use"
// @Router /programs/{id} [delete]
func (c *ProgramController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.programService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Program deleted"))
}
