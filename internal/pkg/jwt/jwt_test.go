package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

func TestGenerateAndValidateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken("admin", "ADMIN", testSecret, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "blood-bridge", claims.Issuer)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken("admin", "ADMIN", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("admin", "ADMIN", testSecret, 60)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other_secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
