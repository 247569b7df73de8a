package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/oguzk/fitpulse/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "fitpulse.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    "user-1",
		Email: "jane@fitpulse.app",
		Role:  models.RoleClient,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := testService(time.Hour)

	token, expiresIn, err := service.GenerateToken(testUser())
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@fitpulse.app", claims.Email)
	assert.Equal(t, models.RoleClient, claims.Role)
	assert.Equal(t, "fitpulse.test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	service := testService(-time.Minute)

	token, _, err := service.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrExpiredToken))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "fitpulse.test",
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	_, err := testService(time.Hour).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	for _, header := range []string{"", "abc123", "Basic abc123", "Bearer "} {
		_, err := ExtractBearerToken(header)
		assert.True(t, errors.Is(err, ErrInvalidFormat), "header %q", header)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, "Password123!", hash)
	assert.True(t, CheckPassword(hash, "Password123!"))
	assert.False(t, CheckPassword(hash, "password123!"))
}
