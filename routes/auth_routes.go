package routes

import (
	"github.com/sidduboy2025-hash/soch-ai-showcase/controllers/auth_controller"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", auth_controller.Signup)
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)

		// Google OAuth routes
		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)
	}
}
