package services

import (
	"context"
	"testing"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/config"
	"bloodbridge/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:          "test_secret",
			TokenTTLMinutes: 60,
		},
	}
}

func TestAuthService_CreateAccountAndLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	account, err := svc.CreateAccount(ctx, "admin", "hunter22", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, account.Role)
	assert.NotEqual(t, "hunter22", account.Password)

	token, err := svc.Login(ctx, &LoginInput{Username: "admin", Password: "hunter22"})
	require.NoError(t, err)

	claims, err := jwt.ValidateAccessToken(token, "test_secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
}

func TestAuthService_CreateAccount_DuplicateUsername(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "admin", "hunter22", models.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, "admin", "other-pass", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "admin", "hunter22", models.RoleAdmin)
	require.NoError(t, err)

	// Unknown username and wrong password fail with the same error so the
	// login endpoint cannot be used to probe which accounts exist.
	_, unknownErr := svc.Login(ctx, &LoginInput{Username: "ghost", Password: "hunter22"})
	_, wrongPassErr := svc.Login(ctx, &LoginInput{Username: "admin", Password: "nope"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPassErr)
}
