package routes

import (
	"github.com/gin-gonic/gin"

	"adminkit/internal/interfaces/http/handlers"
	"adminkit/internal/interfaces/http/middleware"
)

// SessionRouteConfig holds dependencies for session ledger routes.
type SessionRouteConfig struct {
	SessionHandler *handlers.SessionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupSessionRoutes configures session routes under /api/sessions.
func SetupSessionRoutes(api *gin.RouterGroup, cfg *SessionRouteConfig) {
	sessions := api.Group("/sessions")
	sessions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		sessions.GET("/active", cfg.SessionHandler.ListOwnActiveSessions)
		sessions.GET("/stats", cfg.SessionHandler.GetOwnStats)
		sessions.GET("/stats/:userId", cfg.SessionHandler.GetUserStats)
		sessions.GET("/user/:userId", cfg.SessionHandler.ListUserSessions)
		sessions.GET("/user/:userId/active", cfg.SessionHandler.ListActiveSessions)

		sessions.PATCH("/activity", cfg.SessionHandler.TrackActivity)

		sessions.DELETE("/all", cfg.SessionHandler.TerminateOwnSessions)
		sessions.DELETE("/user/:userId/all", cfg.SessionHandler.TerminateUserSessions)
		sessions.DELETE("/:sessionId", cfg.SessionHandler.TerminateSession)
	}
}
