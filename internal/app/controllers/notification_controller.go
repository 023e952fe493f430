package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
	"github.com/asmit/placenet/internal/pkg/helpers"
)

// NotificationController handles announcements
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// Create publishes an announcement
// @Summary Create notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NotificationRequest true "Notification data"
// @Success 201 {object} dto.APIResponse{data=models.Notification} "Notification created"
// @Router /notifications [post]
func (c *NotificationController) Create(ctx *gin.Context) {
	var req dto.NotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	notification, err := c.notificationService.Create(ctx.Request.Context(), &req, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(notification))
}

// GetAll lists announcements, newest first
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Notification} "Notifications"
// @Router /notifications [get]
func (c *NotificationController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	notifications, total, err := c.notificationService.GetAll(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(notifications, helpers.NewPaginationInfo(total, page, size)))
}

// GetByID returns one announcement
// @Summary Get notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse{data=models.Notification} "Notification"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Router /notifications/{id} [get]
func (c *NotificationController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	notification, err := c.notificationService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notification))
}

// Update rewrites an announcement
// @Summary Update notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Param request body dto.NotificationRequest true "Notification data"
// @Success 200 {object} dto.APIResponse{data=models.Notification} "Notification updated"
// @Router /notifications/{id} [put]
func (c *NotificationController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.NotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	notification, err := c.notificationService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notification))
}

// Delete removes an announcement
// @Summary Delete notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse "Notification deleted"
// @Router /notifications/{id} [delete]
func (c *NotificationController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.notificationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Notification deleted"))
}
