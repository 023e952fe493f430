package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
	"github.com/asmit/placenet/internal/pkg/helpers"
)

// DriveController handles placement drive administration and listing
type DriveController struct {
	driveService services.DriveService
}

// NewDriveController creates a new DriveController
func NewDriveController(driveService services.DriveService) *DriveController {
	return &DriveController{driveService: driveService}
}

// Create creates a placement drive
// @Summary Create drive
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDriveRequest true "Drive data"
// @Success 201 {object} dto.APIResponse{data=models.PlacementDrive} "Drive created"
// @Router /drives [post]
func (c *DriveController) Create(ctx *gin.Context) {
	var req dto.CreateDriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	drive, err := c.driveService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(drive))
}

// GetAll lists drives. Students see only active drives.
// @Summary List drives
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param sessionId query int false "Filter by session"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.PlacementDrive} "Drives"
// @Router /drives [get]
func (c *DriveController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	activeOnly := !middleware.IsAdmin(ctx)

	drives, total, err := c.driveService.GetAll(ctx.Request.Context(),
		parseOptionalInt64Query(ctx, "sessionId"), activeOnly, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(drives, helpers.NewPaginationInfo(total, page, size)))
}

// GetByID returns one drive. For students an inactive drive reads as missing.
// @Summary Get drive
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=models.PlacementDrive} "Drive"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id} [get]
func (c *DriveController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	drive, err := c.driveService.GetByID(ctx.Request.Context(), id, !middleware.IsAdmin(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(drive))
}

// Update updates a drive
// @Summary Update drive
// @Description Rewrites a drive. Existing applications keep the CTC captured at apply time.
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Param request body dto.UpdateDriveRequest true "Drive data"
// @Success 200 {object} dto.APIResponse{data=models.PlacementDrive} "Drive updated"
// @Router /drives/{id} [put]
func (c *DriveController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	drive, err := c.driveService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(drive))
}

// Delete deletes a drive without applications
// @Summary Delete drive
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse "Drive deleted"
// @Failure 409 {object} dto.ErrorResponse "Drive has applications"
// @Router /drives/{id} [delete]
func (c *DriveController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.driveService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Drive deleted"))
}
