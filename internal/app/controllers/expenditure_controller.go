package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
	"github.com/asmit/placenet/internal/pkg/helpers"
)

// ExpenditureController handles placement-cell expense tracking
type ExpenditureController struct {
	expenditureService services.ExpenditureService
}

// NewExpenditureController creates a new ExpenditureController
func NewExpenditureController(expenditureService services.ExpenditureService) *ExpenditureController {
	return &ExpenditureController{expenditureService: expenditureService}
}

// Create records an expense with an optional bill
// @Summary Create expenditure
// @Tags expenditures
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param purpose formData string true "Purpose"
// @Param amount formData int true "Amount"
// @Param spentOn formData string true "Spend date (YYYY-MM-DD)"
// @Param bill formData file false "Bill (jpeg, jpg, png or pdf)"
// @Success 201 {object} dto.APIResponse{data=models.Expenditure} "Expenditure created"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or file type"
// @Router /expenditures [post]
func (c *ExpenditureController) Create(ctx *gin.Context) {
	var req dto.ExpenditureRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	bill, err := ctx.FormFile("bill")
	if err != nil && err != http.ErrMissingFile {
		middleware.HandleValidationError(ctx, err)
		return
	}

	expenditure, err := c.expenditureService.Create(ctx.Request.Context(), &req, bill, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(expenditure))
}

// GetAll lists expenses
// @Summary List expenditures
// @Tags expenditures
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Expenditure} "Expenditures"
// @Router /expenditures [get]
func (c *ExpenditureController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	expenditures, total, err := c.expenditureService.GetAll(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(expenditures, helpers.NewPaginationInfo(total, page, size)))
}

// GetByID returns one expense
// @Summary Get expenditure
// @Tags expenditures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expenditure ID"
// @Success 200 {object} dto.APIResponse{data=models.Expenditure} "Expenditure"
// @Failure 404 {object} dto.ErrorResponse "Expenditure not found"
// @Router /expenditures/{id} [get]
func (c *ExpenditureController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	expenditure, err := c.expenditureService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(expenditure))
}

// Update rewrites an expense; a new bill replaces the stored one
// @Summary Update expenditure
// @Tags expenditures
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expenditure ID"
// @Param purpose formData string true "Purpose"
// @Param amount formData int true "Amount"
// @Param spentOn formData string true "Spend date (YYYY-MM-DD)"
// @Param bill formData file false "Bill (jpeg, jpg, png or pdf)"
// @Success 200 {object} dto.APIResponse{data=models.Expenditure} "Expenditure updated"
// @Router /expenditures/{id} [put]
func (c *ExpenditureController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ExpenditureRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	bill, err := ctx.FormFile("bill")
	if err != nil && err != http.ErrMissingFile {
		middleware.HandleValidationError(ctx, err)
		return
	}

	expenditure, err := c.expenditureService.Update(ctx.Request.Context(), id, &req, bill)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(expenditure))
}

// Delete removes an expense and its bill
// @Summary Delete expenditure
// @Tags expenditures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expenditure ID"
// @Success 200 {object} dto.APIResponse "Expenditure deleted"
// @Router /expenditures/{id} [delete]
func (c *ExpenditureController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.expenditureService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Expenditure deleted"))
}
