package routes

import (
	"github.com/gin-gonic/gin"

	"adminkit/internal/interfaces/http/handlers"
	"adminkit/internal/interfaces/http/middleware"
)

// ProductRouteConfig holds dependencies for product catalog routes.
type ProductRouteConfig struct {
	ProductHandler *handlers.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
	TrackActivity  gin.HandlerFunc
}

// SetupProductRoutes configures product routes under /api/products.
// Reads are public; writes require authentication.
func SetupProductRoutes(api *gin.RouterGroup, cfg *ProductRouteConfig) {
	products := api.Group("/products")
	{
		// Fixed paths before /:id so gin does not treat them as ids.
		products.GET("/categories", cfg.ProductHandler.ListCategories)
		products.GET("", cfg.ProductHandler.ListProducts)
		products.GET("/:id", cfg.ProductHandler.GetProduct)
	}

	writes := api.Group("/products")
	writes.Use(cfg.AuthMiddleware.RequireAuth())
	if cfg.TrackActivity != nil {
		writes.Use(cfg.TrackActivity)
	}
	{
		writes.POST("", cfg.ProductHandler.CreateProduct)
		writes.PUT("/:id", cfg.ProductHandler.UpdateProduct)
		writes.PATCH("/:id/stock", cfg.ProductHandler.UpdateStock)
		writes.DELETE("/:id", cfg.ProductHandler.DeleteProduct)
	}
}
