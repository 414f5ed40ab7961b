package routes

import (
	"github.com/sidduboy2025-hash/soch-ai-showcase/controllers/user_controller"
	"github.com/sidduboy2025-hash/soch-ai-showcase/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up all user profile routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		user.GET("/me", user_controller.GetMe)

		// Model submissions
		user.GET("/models", user_controller.GetMyModels)
		user.POST("/models", user_controller.UploadModel)
	}
}
