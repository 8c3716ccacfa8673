package auth

import (
	"testing"
	"time"

	"leyenda/config"
	"leyenda/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, "ana@example.com", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "ana@example.com", accessClaims.Email)
	assert.True(t, accessClaims.IsAdmin)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), "ana@example.com", false)
	assert.NoError(t, err)

	// An access token must not validate as a refresh token, and vice versa.
	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("not.a.token")
	assert.Error(t, err)

	_, err = jwtService.ValidateAccessToken("")
	assert.Error(t, err)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RefusesDefaultSecretsInProduction(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "production"
	cfg.SecretKey.Access = "changeme"
	cfg.SecretKey.Refresh = "changeme"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: 48 * time.Hour}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, 48*time.Hour, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_HashTokenIsStableAndFixedLength(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	first := jwtService.HashToken("some-token")
	second := jwtService.HashToken("some-token")
	other := jwtService.HashToken("another-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	// hex-encoded SHA-256
	assert.Len(t, first, 64)
	assert.Len(t, other, 64)
}
