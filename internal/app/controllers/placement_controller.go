package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
	"github.com/asmit/placenet/internal/pkg/helpers"
)

// PlacementController handles the application lifecycle: applying to drives
// and resolving outcomes
type PlacementController struct {
	placementService services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService) *PlacementController {
	return &PlacementController{placementService: placementService}
}

// Apply submits the authenticated student's application to a drive
// @Summary Apply to a drive
// @Description Applies to an active drive, capturing the drive's CTC on the application
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyRequest true "Drive to apply to"
// @Success 201 {object} dto.APIResponse{data=models.PlacementApplication} "Application submitted"
// @Failure 404 {object} dto.ErrorResponse "Drive not found or inactive"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Router /student-placements/apply [post]
func (c *PlacementController) Apply(ctx *gin.Context) {
	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	application, err := c.placementService.Apply(ctx.Request.Context(), middleware.GetStudentID(ctx), req.DriveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application))
}

// AppliedDrives returns the IDs of drives the student has applied to
// @Summary List applied drive IDs
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]int64} "Drive IDs"
// @Router /student-placements/applied-drives [get]
func (c *PlacementController) AppliedDrives(ctx *gin.Context) {
	ids, err := c.placementService.ListAppliedDriveIDs(ctx.Request.Context(), middleware.GetStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(ids))
}

// MyPlacements returns the student's applications with outcomes
// @Summary List my applications
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.PlacementApplication} "Applications"
// @Router /student-placements/my-placements [get]
func (c *PlacementController) MyPlacements(ctx *gin.Context) {
	applications, err := c.placementService.MyPlacements(ctx.Request.Context(), middleware.GetStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
}

// ListByDrive lists all applications to one drive for the admin panel
// @Summary List drive applications
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.PlacementApplication} "Applications"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id}/applications [get]
func (c *PlacementController) ListByDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	applications, total, err := c.placementService.ListByDrive(ctx.Request.Context(), id, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(applications, helpers.NewPaginationInfo(total, page, size)))
}

// UpdateStatus records the outcome of the authenticated student's
// application to a drive
// @Summary Update placement status
// @Description Sets the outcome via the is_selected field (Yes, No, Pending). Selecting requires role and place and accepts an offer letter file; any other outcome clears them.
// @Tags placements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID"
// @Param is_selected formData string true "Yes, No or Pending"
// @Param role formData string false "Offered role (required when Yes)"
// @Param place formData string false "Posting location (required when Yes)"
// @Param offerletter_file formData file false "Offer letter (jpeg, jpg, png or pdf)"
// @Success 200 {object} dto.APIResponse{data=models.PlacementApplication} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Missing role/place or bad file type"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /student-placements/my-placements/{driveId} [put]
func (c *PlacementController) UpdateStatus(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}
	studentID := middleware.GetStudentID(ctx)

	var req dto.UpdatePlacementStatusRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	// Absent file is fine; only a malformed part is an error.
	offerLetter, err := ctx.FormFile("offerletter_file")
	if err != nil && err != http.ErrMissingFile {
		middleware.HandleValidationError(ctx, err)
		return
	}

	application, err := c.placementService.UpdateStatus(ctx.Request.Context(), driveID, studentID, &req, offerLetter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(application))
}
