package services

import (
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user credential operations
type AuthService struct{}

var authService *AuthService

// GetAuthService returns the shared auth service
func GetAuthService() *AuthService {
	if authService == nil {
		authService = &AuthService{}
	}
	return authService
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Convenience wrappers over the shared service

func HashPassword(password string) (string, error) {
	return GetAuthService().HashPassword(password)
}

func VerifyPassword(hash, password string) bool {
	return GetAuthService().VerifyPassword(hash, password)
}
