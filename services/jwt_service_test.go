package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJWTService_EmptySecret(t *testing.T) {
	assert.Error(t, InitJWTService(""))
}

func TestUserJWT_RoundTrip(t *testing.T) {
	require.NoError(t, InitJWTService("round-trip-secret"))

	userID := uuid.Must(uuid.NewV7()).String()
	token, err := GenerateUserJWT(userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyUserJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "soch-ai-api", claims.Issuer)

	// Expiry matches the 7-day credential cookie lifetime
	require.NotNil(t, claims.ExpiresAt)
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), ttl.Seconds(), float64((time.Minute).Seconds()))
}

func TestGenerateUserJWT_RejectsEmptyClaims(t *testing.T) {
	require.NoError(t, InitJWTService("secret"))

	_, err := GenerateUserJWT("", "user@example.com")
	assert.Error(t, err)

	_, err = GenerateUserJWT("some-id", "")
	assert.Error(t, err)
}

func TestVerifyUserJWT_WrongSecret(t *testing.T) {
	require.NoError(t, InitJWTService("secret-one"))
	token, err := GenerateUserJWT("some-id", "user@example.com")
	require.NoError(t, err)

	require.NoError(t, InitJWTService("secret-two"))
	_, err = VerifyUserJWT(token)
	assert.Error(t, err)
}

func TestVerifyUserJWT_MissingClaims(t *testing.T) {
	require.NoError(t, InitJWTService("secret"))

	// A structurally valid token without user_id/email must be rejected
	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := bare.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = VerifyUserJWT(signed)
	assert.Error(t, err)
}

func TestVerifyUserJWT_Expired(t *testing.T) {
	require.NoError(t, InitJWTService("secret"))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, UserJWTClaims{
		UserID: "some-id",
		Email:  "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = VerifyUserJWT(signed)
	assert.Error(t, err)
}
