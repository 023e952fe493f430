package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
	"github.com/asmit/placenet/internal/pkg/helpers"
)

// CompanyController handles company and company type administration
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// CreateType creates a company type
// @Summary Create company type
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CompanyTypeRequest true "Type data"
// @Success 201 {object} dto.APIResponse{data=models.CompanyType} "Type created"
// @Router /company-types [post]
func (c *CompanyController) CreateType(ctx *gin.Context) {
	var req dto.CompanyTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	companyType, err := c.companyService.CreateType(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(companyType))
}

// GetAllTypes lists company types
// @Summary List company types
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CompanyType} "Types"
// @Router /company-types [get]
func (c *CompanyController) GetAllTypes(ctx *gin.Context) {
	types, err := c.companyService.GetAllTypes(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(types))
}

// UpdateType updates a company type
// @Summary Update company type
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Type ID"
// @Param request body dto.CompanyTypeRequest true "Type data"
// @Success 200 {object} dto.APIResponse{data=models.CompanyType} "Type updated"
// @Router /company-types/{id} [put]
func (c *CompanyController) UpdateType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CompanyTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	companyType, err := c.companyService.UpdateType(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(companyType))
}

// DeleteType deletes a company type
// @Summary Delete company type
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Type ID"
// @Success 200 {object} dto.APIResponse "Type deleted"
// @Failure 409 {object} dto.ErrorResponse "Type is in use"
// @Router /company-types/{id} [delete]
func (c *CompanyController) DeleteType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.companyService.DeleteType(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Company type deleted"))
}

// Create creates a company
// @Summary Create company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CompanyRequest true "Company data"
// @Success 201 {object} dto.APIResponse{data=models.Company} "Company created"
// @Failure 409 {object} dto.ErrorResponse "Company already exists"
// @Router /companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	company, err := c.companyService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(company))
}

// GetAll lists companies
// @Summary List companies
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param typeId query int false "Filter by company type"
// @Param search query string false "Name search"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Companies"
// @Router /companies [get]
func (c *CompanyController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	companies, total, err := c.companyService.GetAll(ctx.Request.Context(),
		parseOptionalInt64Query(ctx, "typeId"), ctx.Query("search"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(companies, helpers.NewPaginationInfo(total, page, size)))
}

// GetByID returns one company
// @Summary Get company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [get]
func (c *CompanyController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	company, err := c.companyService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(company))
}

// Update updates a company
// @Summary Update company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Param request body dto.CompanyRequest true "Company data"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company updated"
// @Router /companies/{id} [put]
func (c *CompanyController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	company, err := c.companyService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(company))
}

// Delete deletes a company
// @Summary Delete company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse "Company deleted"
// @Failure 409 {object} dto.ErrorResponse "Company is in use"
// @Router /companies/{id} [delete]
func (c *CompanyController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.companyService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Company deleted"))
}
