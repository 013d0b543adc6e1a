package routes

import (
	"github.com/gin-gonic/gin"

	"adminkit/internal/interfaces/http/handlers"
	"adminkit/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	TrackActivity  gin.HandlerFunc
}

// SetupUserRoutes configures user management routes under /api/users.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	if cfg.TrackActivity != nil {
		users.Use(cfg.TrackActivity)
	}
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.POST("", cfg.UserHandler.CreateUser)

		users.GET("/:id", cfg.UserHandler.GetUser)
		users.PUT("/:id", cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", cfg.UserHandler.DeleteUser)
		users.PATCH("/:id/password", cfg.UserHandler.ChangePassword)
		users.GET("/:id/profile", cfg.UserHandler.GetUserProfile)
	}
}
