package auth_controller

import (
	"log"
	"net/http"

	"github.com/sidduboy2025-hash/soch-ai-showcase/config"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/sidduboy2025-hash/soch-ai-showcase/services"
	"github.com/sidduboy2025-hash/soch-ai-showcase/utils"
	"github.com/gin-gonic/gin"
)

// Login godoc
// @Summary Log a user in
// @Description Verifies the credentials and sets the auth_token and user_data cookies with a 7-day expiry. A failed login leaves no session state behind.
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Missing fields"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required."))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.CatalogGorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&user).Error; err != nil {
		// same message as a wrong password: do not leak which emails exist
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password."))
		return
	}

	if user.PasswordHash == "" || !services.VerifyPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password."))
		return
	}

	if user.Status != "active" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is not active."))
		return
	}

	authResp, err := establishSession(c, &user)
	if err != nil {
		log.Printf("❌ Session setup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed. Please try again."))
		return
	}

	// Log login event
	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	log.Printf("✅ Login successful: %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", authResp))
}
