package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
	"github.com/asmit/placenet/internal/pkg/helpers"
)

// UserController handles account administration
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetAccounts lists user accounts for the admin panel
// @Summary List accounts
// @Description Lists user accounts, optionally filtered by activation status
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (PENDING, ACTIVE, REJECTED)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Accounts"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /users [get]
func (c *UserController) GetAccounts(ctx *gin.Context) {
	var status *models.AccountStatus
	if raw := ctx.Query("status"); raw != "" {
		s := models.AccountStatus(raw)
		status = &s
	}

	page, size := helpers.ParsePaginationParams(ctx)
	users, total, err := c.userService.GetAccounts(ctx.Request.Context(), status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(users, helpers.NewPaginationInfo(total, page, size)))
}

// UpdateAccountStatus resolves a pending registration
// @Summary Update account status
// @Description Sets a student account to ACTIVE or REJECTED
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateAccountStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse "Status updated"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/status [put]
func (c *UserController) UpdateAccountStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAccountStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.userService.UpdateAccountStatus(ctx.Request.Context(), id, models.AccountStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Account status updated"))
}

// UpdateMyAdminProfile updates the authenticated admin's profile
// @Summary Update admin profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAdminProfileRequest true "Profile data"
// @Success 200 {object} dto.APIResponse{data=models.AdminProfile} "Profile updated"
// @Router /users/me/admin-profile [put]
func (c *UserController) UpdateMyAdminProfile(ctx *gin.Context) {
	var req dto.UpdateAdminProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	profile, err := c.userService.UpdateAdminProfile(ctx.Request.Context(), middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
