package services

import (
	"testing"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/auth"
	"furnimarket_backend/internal/config"
	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestJWTConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 5
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func registerAlice(t *testing.T, env *testEnv) {
	t.Helper()
	_, err := env.userService.RegisterUser(userInsert("alice"))
	require.NoError(t, err)
}

func TestAuthenticateIssuesValidToken(t *testing.T) {
	setTestJWTConfig(t)
	env := setupEnv(t)
	registerAlice(t, env)

	resp, err := env.authService.Authenticate(dto.LoginRequest{
		Username: "alice",
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, string(models.UserRoleUser), claims.Role)
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	setTestJWTConfig(t)
	env := setupEnv(t)
	registerAlice(t, env)

	_, err := env.authService.Authenticate(dto.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})
	assertCode(t, err, appErrors.CodeNotAuthorized)
}

func TestAuthenticateRejectsUnknownUser(t *testing.T) {
	setTestJWTConfig(t)
	env := setupEnv(t)

	_, err := env.authService.Authenticate(dto.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	assertCode(t, err, appErrors.CodeNotAuthorized)
}

func TestAuthenticateRejectsDeactivatedAccount(t *testing.T) {
	setTestJWTConfig(t)
	env := setupEnv(t)
	registerAlice(t, env)

	inactive := false
	require.NoError(t, env.db.Model(&models.User{}).Where("username = ?", "alice").
		Update("is_active", inactive).Error)

	_, err := env.authService.Authenticate(dto.LoginRequest{
		Username: "alice",
		Password: "Sup3rSecret!",
	})
	assertCode(t, err, appErrors.CodeNotAuthorized)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	setTestJWTConfig(t)

	token, err := auth.GenerateToken(1, "alice", "USER")
	require.NoError(t, err)

	_, err = auth.ParseToken(token + "x")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
