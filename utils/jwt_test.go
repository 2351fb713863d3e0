package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenKindEnforcement(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	access, err := GenerateAccessToken(42, "u@example.com")
	require.NoError(t, err)
	refresh, jti, _, err := GenerateRefreshToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, jti)

	claims, err := ParseToken(access, TokenKindAccess)
	require.NoError(t, err)
	id, ok := ClaimUserID(claims)
	require.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, err = ParseToken(access, TokenKindRefresh)
	assert.Error(t, err, "access token must not pass as refresh")
	_, err = ParseToken(refresh, TokenKindAccess)
	assert.Error(t, err, "refresh token must not pass as access")

	_, err = ParseToken("garbage", TokenKindAccess)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	access, err := GenerateAccessToken(1, "u@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ParseToken(access, TokenKindAccess)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
