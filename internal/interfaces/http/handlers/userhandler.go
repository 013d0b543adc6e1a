package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"adminkit/internal/application/user/usecases"
	"adminkit/internal/shared/logger"
	"adminkit/internal/shared/utils"
)

// UserHandler handles the user CRUD surface.
type UserHandler struct {
	listUC           listUsersUseCase
	getUC            getUserUseCase
	createUC         createUserUseCase
	updateUC         updateUserUseCase
	deleteUC         deleteUserUseCase
	changePasswordUC changePasswordUseCase
	profileUC        getUserProfileUseCase
	logger           logger.Interface
}

func NewUserHandler(
	listUC listUsersUseCase,
	getUC getUserUseCase,
	createUC createUserUseCase,
	updateUC updateUserUseCase,
	deleteUC deleteUserUseCase,
	changePasswordUC changePasswordUseCase,
	profileUC getUserProfileUseCase,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUC:           listUC,
		getUC:            getUC,
		createUC:         createUC,
		updateUC:         updateUC,
		deleteUC:         deleteUC,
		changePasswordUC: changePasswordUC,
		profileUC:        profileUC,
		logger:           log,
	}
}

type CreateUserRequest struct {
	FirstName   string `json:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" binding:"max=100"`
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateUserRequest struct {
	FirstName   *string `json:"firstName" binding:"omitempty,max=100"`
	LastName    *string `json:"lastName" binding:"omitempty,max=100"`
	Username    *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Gender      *string `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := utils.ParsePageParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      page.Page,
		Limit:     page.Limit,
	})
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"users":      NewUserResponseList(result.Users),
		"pagination": utils.NewPagination(result.Total, page.Page, page.Limit),
	})
}

// GetUser handles GET /api/users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	u, err := h.getUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewUserResponse(u))
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create user request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	var dateOfBirth time.Time
	if req.DateOfBirth != "" {
		dateOfBirth, _ = time.Parse("2006-01-02", req.DateOfBirth)
	}

	created, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
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

	utils.SuccessResponse(c, http.StatusCreated, "User created successfully", NewUserResponse(created))
}

// UpdateUser handles PUT /api/users/:id. Absent fields are untouched.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update user request", "user_id", userID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	cmd := usecases.UpdateUserCommand{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Gender:    req.Gender,
	}
	if req.DateOfBirth != nil {
		dob, parseErr := time.Parse("2006-01-02", *req.DateOfBirth)
		if parseErr == nil {
			cmd.DateOfBirth = &dob
		}
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", NewUserResponse(updated))
}

// DeleteUser handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID); err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

// ChangePassword handles PATCH /api/users/:id/password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	if err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

// GetUserProfile handles GET /api/users/:id/profile.
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	result, err := h.profileUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user":         NewUserResponse(result.User),
		"sessionStats": NewSessionStatsResponse(result.Stats),
	})
}
