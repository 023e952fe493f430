package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/services"
	"github.com/asmit/placenet/internal/middleware"
)

// AuthController handles registration, login and token lifecycle
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles student self-registration
// @Summary Register a student account
// @Description Creates a student account in PENDING state awaiting admin approval
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email or roll number already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user))
}

// Login handles credential verification and token issuance
// @Summary Log in
// @Description Verifies credentials and returns an access/refresh token pair. The access token is also set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Tokens issued"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account not active"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	tokens, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(middleware.AccessTokenCookie, tokens.AccessToken, tokens.ExpiresIn, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokens))
}

// Refresh handles refresh token rotation
// @Summary Refresh tokens
// @Description Consumes a refresh token and issues a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Tokens issued"
// @Failure 401 {object} dto.ErrorResponse "Token invalid or expired"
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	tokens, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(middleware.AccessTokenCookie, tokens.AccessToken, tokens.ExpiresIn, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokens))
}

// Logout invalidates the presented refresh token and clears the cookie
// @Summary Log out
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), req.RefreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// Me returns the authenticated user with its role-specific profile
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Current user"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	profile, err := c.authService.GetCurrentUser(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
