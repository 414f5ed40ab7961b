// controllers/auth_controller/logout.go
package auth_controller

import (
	"net/http"

	"github.com/sidduboy2025-hash/soch-ai-showcase/session"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Logout user
// @Description Logs out the authenticated user by clearing the auth_token and user_data cookies.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Logged out"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	mgr := session.NewManager(session.NewCookieStore(c))
	mgr.Logout()

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
