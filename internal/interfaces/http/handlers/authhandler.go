package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"adminkit/internal/application/auth/usecases"
	"adminkit/internal/shared/constants"
	"adminkit/internal/shared/logger"
	"adminkit/internal/shared/utils"
)

// AuthHandler handles registration, login, logout, token refresh and the
// password reset stubs.
type AuthHandler struct {
	registerUC     registerUseCase
	loginUC        loginUseCase
	logoutUC       logoutUseCase
	refreshUC      refreshTokenUseCase
	requestResetUC requestPasswordResetUseCase
	resetUC        resetPasswordUseCase
	logger         logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	refreshUC refreshTokenUseCase,
	requestResetUC requestPasswordResetUseCase,
	resetUC resetPasswordUseCase,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC:     registerUC,
		loginUC:        loginUC,
		logoutUC:       logoutUC,
		refreshUC:      refreshUC,
		requestResetUC: requestResetUC,
		resetUC:        resetUC,
		logger:         log,
	}
}

type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" binding:"max=100"`
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	SessionID string `json:"sessionId"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// Register handles POST /api/auth/register. Registration issues a token
// pair but does not create a session record; the first login does.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	var dateOfBirth time.Time
	if req.DateOfBirth != "" {
		dateOfBirth, _ = time.Parse("2006-01-02", req.DateOfBirth)
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Gender:      req.Gender,
		DateOfBirth: dateOfBirth,
	})
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":         NewUserResponse(result.User),
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"expiresIn":    result.ExpiresIn,
	})
}

// Login handles POST /api/auth/login. The identifier may be an email or a
// username.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Identifier: req.Identifier,
		Password:   req.Password,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"user":         NewUserResponse(result.User),
		"sessionId":    result.SessionID,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"expiresIn":    result.ExpiresIn,
	})
}

// Logout handles POST /api/auth/logout. Always succeeds; closing an
// already-closed or unknown session is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	// Body is optional; ignore malformed bodies and fall back to the
	// authenticated caller's sessions.
	_ = c.ShouldBindJSON(&req)

	cmd := usecases.LogoutCommand{SessionID: req.SessionID}
	if cmd.SessionID == "" {
		cmd.UserID = c.GetUint(constants.ContextKeyUserID)
	}

	if _, err := h.logoutUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// RefreshToken handles POST /api/auth/refresh.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid refresh request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", TokenResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// ForgotPassword handles POST /api/auth/forgot-password. The response never
// reveals whether the email exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	if err := h.requestResetUC.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{
		Email: req.Email,
	}); err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "If the email exists, a password reset link has been sent", nil)
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	if err := h.resetUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password has been reset successfully", nil)
}
