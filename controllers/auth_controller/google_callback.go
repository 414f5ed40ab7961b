// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/google_callback.go
// Google OAuth Callback Handler
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/sidduboy2025-hash/soch-ai-showcase/config"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/sidduboy2025-hash/soch-ai-showcase/services"
	"github.com/sidduboy2025-hash/soch-ai-showcase/session"
	"github.com/sidduboy2025-hash/soch-ai-showcase/utils"
	"github.com/gin-gonic/gin"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the callback from Google OAuth. Verifies the state token, exchanges the authorization code, verifies the ID token, creates/updates the user in the database, issues the session cookies, and redirects the user back to the frontend.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to frontend after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Failure 401 {object} models.ApiResponse "Unauthorized or token exchange failure"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ State mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("❌ No code")
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ Exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		log.Printf("❌ No ID token in exchange response")
		redirectToFrontendWithError(c, "No ID token in response")
		return
	}

	// Verify the ID token signature and audience before trusting any claim
	idToken, err := config.OIDCVerifier.Verify(context.Background(), rawIDToken)
	if err != nil {
		log.Printf("❌ ID token verification failed: %v", err)
		redirectToFrontendWithError(c, "Failed to verify ID token")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := idToken.Claims(&googleUser); err != nil {
		log.Printf("❌ Decode failed: %v", err)
		redirectToFrontendWithError(c, "Failed to decode user info")
		return
	}

	if googleUser.Sub == "" {
		log.Printf("❌ No Google ID")
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}

	log.Printf("✅ Got user: %s (Google ID: %s, Verified: %v)",
		googleUser.Email, googleUser.Sub, googleUser.EmailVerified)

	user, err := createOrUpdateUser(c, &googleUser, googleUser.Sub, googleUser.EmailVerified)
	if err != nil {
		log.Printf("❌ DB error: %v", err)
		redirectToFrontendWithError(c, fmt.Sprintf("Database error: %v", err))
		return
	}

	// Log login event
	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	// Generate JWT token
	jwtToken, err := services.GenerateUserJWT(user.ID.String(), user.Email)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	// Persist the session cookies (auth_token HttpOnly, user_data readable)
	mgr := session.NewManager(session.NewCookieStore(c))
	if err := mgr.Login(user.ToResponse(), jwtToken); err != nil {
		log.Printf("❌ Session error: %v", err)
		redirectToFrontendWithError(c, "Failed to establish session")
		return
	}

	log.Printf("✅ Login successful: %s (verified: %v)", user.Email, user.EmailVerified)

	// Redirect to frontend callback (NO token in URL)
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth-popup", frontendURL)

	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
