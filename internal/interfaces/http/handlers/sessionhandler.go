package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adminkit/internal/application/session/usecases"
	"adminkit/internal/shared/constants"
	"adminkit/internal/shared/logger"
	"adminkit/internal/shared/utils"
)

// SessionHandler exposes the session ledger: history, live sessions, stats
// and termination.
type SessionHandler struct {
	listUC         listSessionsUseCase
	activeUC       activeSessionsUseCase
	statsUC        sessionStatsUseCase
	terminateUC    terminateSessionUseCase
	terminateAllUC terminateAllSessionsUseCase
	trackUC        trackActivityUseCase
	logger         logger.Interface
}

func NewSessionHandler(
	listUC listSessionsUseCase,
	activeUC activeSessionsUseCase,
	statsUC sessionStatsUseCase,
	terminateUC terminateSessionUseCase,
	terminateAllUC terminateAllSessionsUseCase,
	trackUC trackActivityUseCase,
	log logger.Interface,
) *SessionHandler {
	return &SessionHandler{
		listUC:         listUC,
		activeUC:       activeUC,
		statsUC:        statsUC,
		terminateUC:    terminateUC,
		terminateAllUC: terminateAllUC,
		trackUC:        trackUC,
		logger:         log,
	}
}

type TrackActivityRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// ListUserSessions handles GET /api/sessions/user/:userId.
func (h *SessionHandler) ListUserSessions(c *gin.Context) {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	page := utils.ParsePageParams(c)
	activeOnly, _ := strconv.ParseBool(c.Query("activeOnly"))

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListSessionsQuery{
		UserID:     userID,
		ActiveOnly: activeOnly,
		Page:       page.Page,
		Limit:      page.Limit,
	})
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"sessions":   NewSessionResponseList(result.Sessions),
		"pagination": utils.NewPagination(result.Total, page.Page, page.Limit),
	})
}

// ListOwnActiveSessions handles GET /api/sessions/active for the caller.
func (h *SessionHandler) ListOwnActiveSessions(c *gin.Context) {
	h.listActive(c, c.GetUint(constants.ContextKeyUserID))
}

// ListActiveSessions handles GET /api/sessions/user/:userId/active.
func (h *SessionHandler) ListActiveSessions(c *gin.Context) {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}
	h.listActive(c, userID)
}

func (h *SessionHandler) listActive(c *gin.Context, userID uint) {
	sessions, err := h.activeUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"sessions": NewSessionResponseList(sessions),
	})
}

// GetOwnStats handles GET /api/sessions/stats for the caller.
func (h *SessionHandler) GetOwnStats(c *gin.Context) {
	h.stats(c, c.GetUint(constants.ContextKeyUserID))
}

// GetUserStats handles GET /api/sessions/stats/:userId.
func (h *SessionHandler) GetUserStats(c *gin.Context) {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}
	h.stats(c, userID)
}

func (h *SessionHandler) stats(c *gin.Context, userID uint) {
	stats, err := h.statsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewSessionStatsResponse(stats))
}

// TerminateSession handles DELETE /api/sessions/:sessionId. Only the owner
// may terminate a session.
func (h *SessionHandler) TerminateSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid sessionId parameter")
		return
	}

	if err := h.terminateUC.Execute(c.Request.Context(), usecases.TerminateSessionCommand{
		SessionID:   sessionID,
		RequesterID: c.GetUint(constants.ContextKeyUserID),
	}); err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Session terminated successfully", nil)
}

// TerminateOwnSessions handles DELETE /api/sessions/all for the caller.
func (h *SessionHandler) TerminateOwnSessions(c *gin.Context) {
	h.terminateAll(c, c.GetUint(constants.ContextKeyUserID))
}

// TerminateUserSessions handles DELETE /api/sessions/user/:userId/all.
func (h *SessionHandler) TerminateUserSessions(c *gin.Context) {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}
	h.terminateAll(c, userID)
}

func (h *SessionHandler) terminateAll(c *gin.Context, userID uint) {
	count, err := h.terminateAllUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sessions terminated successfully", gin.H{
		"terminatedSessions": count,
	})
}

// TrackActivity handles PATCH /api/sessions/activity. Touching a missing
// or closed session is a no-op.
func (h *SessionHandler) TrackActivity(c *gin.Context) {
	var req TrackActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	if err := h.trackUC.Execute(c.Request.Context(), req.SessionID); err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Activity updated", nil)
}
