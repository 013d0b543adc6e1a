// Package routes wires handlers and middleware onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"adminkit/internal/interfaces/http/handlers"
	"adminkit/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimit guards the credential endpoints; nil disables limiting.
	RateLimit gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes under /api/auth.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	limit := cfg.RateLimit
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", limit, cfg.AuthHandler.Register)
		auth.POST("/login", limit, cfg.AuthHandler.Login)
		auth.POST("/forgot-password", limit, cfg.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", cfg.AuthHandler.ResetPassword)
		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)

		// Logout closes the named session, or all of the caller's sessions
		// when authenticated and no session id is supplied.
		auth.POST("/logout", cfg.AuthMiddleware.OptionalAuth(), cfg.AuthHandler.Logout)
	}
}
