package auth_controller

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/sidduboy2025-hash/soch-ai-showcase/config"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/sidduboy2025-hash/soch-ai-showcase/services"
	"github.com/sidduboy2025-hash/soch-ai-showcase/session"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// validateSignup checks the form fields in order and returns the first
// violation found, or "" when the request is clean. Validation happens here,
// at the form boundary; nothing invalid reaches the database or session.
func validateSignup(req *models.SignupRequest) string {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.MobileNumber = strings.TrimSpace(req.MobileNumber)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.MobileNumber == "" || req.Password == "" {
		return "Please fill in all fields."
	}
	if !emailPattern.MatchString(req.Email) {
		return "Please enter a valid email address."
	}
	if !mobilePattern.MatchString(req.MobileNumber) {
		return "Please enter a valid 10-digit mobile number."
	}
	if len(req.Password) < 6 {
		return "Password must be at least 6 characters long."
	}
	return ""
}

// establishSession issues the JWT and persists the credential cookies via
// the session manager. A failure here must leave the caller able to respond
// with an error and no partial authenticated state.
func establishSession(c *gin.Context, user *models.User) (models.AuthResponse, error) {
	token, err := services.GenerateUserJWT(user.ID.String(), user.Email)
	if err != nil {
		return models.AuthResponse{}, err
	}

	mgr := session.NewManager(session.NewCookieStore(c))
	if err := mgr.Login(user.ToResponse(), token); err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{User: user.ToResponse(), Token: token}, nil
}

// createOrUpdateUser links a Google identity to a user row, creating one on
// first login.
func createOrUpdateUser(
	c *gin.Context,
	googleUser *models.GoogleUserInfo,
	googleID string,
	emailVerified bool,
) (*models.User, error) {
	var user models.User

	// Try to find existing user by email
	result := config.CatalogGorm.
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				Email:         googleUser.Email,
				FirstName:     googleUser.GivenName,
				LastName:      googleUser.FamilyName,
				GoogleID:      &googleID,
				Provider:      "google",
				EmailVerified: emailVerified,
				Avatar:        &googleUser.Picture,
				Status:        "active",
			}

			if err := config.CatalogGorm.Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar":         googleUser.Picture,
		"email_verified": emailVerified,
	}

	// Only set the name if the user never had one
	if user.FirstName == "" {
		updates["first_name"] = googleUser.GivenName
		updates["last_name"] = googleUser.FamilyName
	}

	// Attach Google account if not already linked
	if user.GoogleID == nil || *user.GoogleID == "" {
		updates["google_id"] = googleID
		updates["provider"] = "google"
	}

	if err := config.CatalogGorm.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Sync struct with DB updates
	if user.FirstName == "" {
		user.FirstName = googleUser.GivenName
		user.LastName = googleUser.FamilyName
	}
	user.Avatar = &googleUser.Picture
	user.EmailVerified = emailVerified

	return &user, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
