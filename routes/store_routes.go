package routes

import (
	store_category "github.com/sidduboy2025-hash/soch-ai-showcase/controllers/store/category_controller"
	store_model "github.com/sidduboy2025-hash/soch-ai-showcase/controllers/store/model_controller"
	"github.com/gin-gonic/gin"
)

func SetupStoreRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Model catalog routes
	catalog := store.Group("/models")
	{
		catalog.GET("", store_model.GetStorefrontModels) // List with filters + sort

		catalog.GET("/trending", store_model.GetTrendingModels)
		catalog.GET("/newest", store_model.GetNewestModels)
		catalog.GET("/featured", store_model.GetFeaturedModels)

		catalog.GET("/:slug", store_model.GetStorefrontModelBySlug) // Single model
	}

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategories)           // List all with live counts
		categories.GET("/:slug", store_category.GetCategoryBySlug) // Category page payload
	}
}
