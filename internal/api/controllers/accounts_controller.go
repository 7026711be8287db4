package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type AccountsController struct {
	accountService services.AccountServiceInterface
}

func NewAccountsController(accountService services.AccountServiceInterface) *AccountsController {
	return &AccountsController{
		accountService: accountService,
	}
}

// Login godoc
// @Summary Log in with email and password
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Credentials"
// @Success 200 {object} response_models.LoginResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountsController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Logged in successfully")
}

// SignUp godoc
// @Summary Register a new account
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/signup [post]
func (a *AccountsController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Display name, email and password (min 8 chars) are required")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// GetProfile godoc
// @Summary Get the authenticated account's profile
// @Tags Account
// @Produce json
// @Success 200 {object} response_models.AccountResponse
// @Security BearerAuth
// @Router /accounts/me [get]
func (a *AccountsController) GetProfile(c *gin.Context) {
	accountId := c.GetString("user_id")

	profile, err := a.accountService.GetProfile(c.Request.Context(), accountId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// ForgotPassword godoc
// @Summary Request a password reset token by email
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordRequest true "Account email"
// @Success 200 {object} utils.APIResponse
// @Router /auth/forgot-password [post]
func (a *AccountsController) ForgotPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	if err := a.accountService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email exists, a reset link has been sent")
}

// ResetPassword godoc
// @Summary Reset password with a previously issued token
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/reset-password [post]
func (a *AccountsController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Token and new password (min 8 chars) are required")
		return
	}

	if err := a.accountService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password reset successfully")
}
