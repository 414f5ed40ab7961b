// @title Soch AI Showcase API
// @version 1.0
// @description Soch AI Showcase Backend API Documentation
// @host localhost:1000
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sidduboy2025-hash/soch-ai-showcase/config"
	"github.com/sidduboy2025-hash/soch-ai-showcase/controllers/user_controller"
	_ "github.com/sidduboy2025-hash/soch-ai-showcase/docs"
	"github.com/sidduboy2025-hash/soch-ai-showcase/middleware"
	"github.com/sidduboy2025-hash/soch-ai-showcase/routes"
	"github.com/sidduboy2025-hash/soch-ai-showcase/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()
	// Initialize Cloudinary service
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := user_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// ✅ Initialize JWT Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public storefront behind the rate limiter
	storeGroup := api.Group("")
	storeGroup.Use(middleware.RateLimiter(300, time.Minute))
	routes.SetupStoreRoutes(storeGroup)

	routes.SetupAuthRoutes(api)
	routes.SetupUserRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:1000")
	router.Run(":1000")
}
