package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"adminkit/internal/shared/constants"
	"adminkit/internal/shared/logger"
)

type activityTracker interface {
	Execute(ctx context.Context, sessionID string) error
}

// TrackActivity refreshes the session's last activity timestamp after each
// authenticated request. Tracking failures never affect the response.
func TrackActivity(tracker activityTracker, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		sessionID := c.GetString(constants.ContextKeySessionID)
		if sessionID == "" {
			return
		}

		if err := tracker.Execute(c.Request.Context(), sessionID); err != nil {
			log.Warnw("session activity tracking failed", "session_id", sessionID, "error", err)
		}
	}
}
