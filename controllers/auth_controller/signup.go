package auth_controller

import (
	"log"
	"net/http"

	"github.com/sidduboy2025-hash/soch-ai-showcase/config"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/sidduboy2025-hash/soch-ai-showcase/services"
	"github.com/sidduboy2025-hash/soch-ai-showcase/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Signup godoc
// @Summary Create a user account
// @Description Validates the signup form, creates the user, and signs them in. On success the auth_token and user_data cookies are set with a 7-day expiry.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup body models.SignupRequest true "Signup details"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/signup [post]
func Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please fill in all fields."))
		return
	}

	if msg := validateSignup(&req); msg != "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, msg))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Reject duplicate emails before hashing anything
	var existing models.User
	err := config.CatalogGorm.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this email already exists."))
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("❌ Signup lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Signup failed. Please try again."))
		return
	}

	passwordHash, err := services.HashPassword(req.Password)
	if err != nil {
		log.Printf("❌ Password hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Signup failed. Please try again."))
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		PasswordHash: passwordHash,
		Provider:     "local",
		Status:       "active",
	}

	if err := config.CatalogGorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("❌ Signup insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Signup failed. Please try again."))
		return
	}

	authResp, err := establishSession(c, &user)
	if err != nil {
		log.Printf("❌ Session setup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Signup succeeded but login failed. Please log in."))
		return
	}

	// Log login event
	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	log.Printf("✅ New account: %s", user.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", authResp))
}
