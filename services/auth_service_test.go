package services

import (
	"testing"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/models"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := RegisterUser("new@example.com", "password123", "New", "User")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password, "password is stored hashed")
	assert.False(t, user.Verified)
	assert.Len(t, user.VerificationCode, 6)

	_, err = RegisterUser("new@example.com", "password123", "Dup", "User")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = RegisterUser("short@example.com", "short", "S", "U")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVerifyEmail(t *testing.T) {
	setupTestDB(t)

	user, err := RegisterUser("verify@example.com", "password123", "V", "U")
	require.NoError(t, err)

	var verr *ValidationError
	require.ErrorAs(t, VerifyEmail(user.Email, "000000"), &verr)

	require.NoError(t, VerifyEmail(user.Email, user.VerificationCode))

	// Already verified: idempotent, any code accepted.
	require.NoError(t, VerifyEmail(user.Email, "whatever"))

	assert.ErrorIs(t, VerifyEmail("nobody@example.com", "123456"), ErrNotFound)
}

func TestAuthenticateUser(t *testing.T) {
	setupTestDB(t)

	_, err := RegisterUser("login@example.com", "password123", "L", "U")
	require.NoError(t, err)

	user, err := AuthenticateUser("login@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", user.Email)

	_, err = AuthenticateUser("login@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = AuthenticateUser("ghost@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// A deactivated account cannot log in even with the right password.
	require.NoError(t, DeactivateUser(user.ID))
	_, err = AuthenticateUser("login@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotation(t *testing.T) {
	setupTestDB(t)

	user, err := RegisterUser("rotate@example.com", "password123", "R", "U")
	require.NoError(t, err)

	pair, err := IssueTokenPair(user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	// The access token never works as a refresh token.
	_, err = RefreshTokens(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	next, err := RefreshTokens(pair.Refresh)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Refresh, next.Refresh)

	// Rotation blacklists the old token: replaying it fails.
	_, err = RefreshTokens(pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// The new one still works.
	_, err = RefreshTokens(next.Refresh)
	require.NoError(t, err)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	setupTestDB(t)

	user, err := RegisterUser("logout@example.com", "password123", "L", "O")
	require.NoError(t, err)

	pair, err := IssueTokenPair(user)
	require.NoError(t, err)

	require.NoError(t, LogoutUser(pair.Refresh))

	// Logging out twice is a no-op.
	require.NoError(t, LogoutUser(pair.Refresh))

	_, err = RefreshTokens(pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestResetPasswordFlow(t *testing.T) {
	db := setupTestDB(t)

	_, err := RegisterUser("reset@example.com", "password123", "R", "P")
	require.NoError(t, err)

	// Unknown addresses get the same silent answer as known ones.
	require.NoError(t, ForgotPassword("nobody@example.com"))
	require.NoError(t, ForgotPassword("reset@example.com"))

	var user models.User
	require.NoError(t, db.Where("email = ?", "reset@example.com").First(&user).Error)
	require.NotEmpty(t, user.ResetToken)

	var verr *ValidationError
	require.ErrorAs(t, ResetPassword("reset@example.com", "000000", "newpassword1"), &verr)
	require.ErrorAs(t, ResetPassword("reset@example.com", user.ResetToken, "short"), &verr)

	// The code is bound to the account it was issued for, guessing a valid
	// code against another address gets nowhere.
	_, err = RegisterUser("bystander@example.com", "password123", "B", "S")
	require.NoError(t, err)
	require.ErrorAs(t, ResetPassword("bystander@example.com", user.ResetToken, "newpassword1"), &verr)

	require.NoError(t, ResetPassword("reset@example.com", user.ResetToken, "newpassword1"))

	_, err = AuthenticateUser("reset@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = AuthenticateUser("reset@example.com", "newpassword1")
	require.NoError(t, err)

	// The code is single-use.
	require.ErrorAs(t, ResetPassword("reset@example.com", user.ResetToken, "anotherpass1"), &verr)
}

func TestAccessTokenClaims(t *testing.T) {
	setupTestDB(t)

	user, err := RegisterUser("claims@example.com", "password123", "C", "U")
	require.NoError(t, err)

	pair, err := IssueTokenPair(user)
	require.NoError(t, err)

	claims, err := utils.ParseToken(pair.Access, utils.TokenKindAccess)
	require.NoError(t, err)
	id, ok := utils.ClaimUserID(claims)
	require.True(t, ok)
	assert.Equal(t, user.ID, id)

	// Kind is enforced: a refresh token does not parse as access.
	_, err = utils.ParseToken(pair.Refresh, utils.TokenKindAccess)
	assert.Error(t, err)
}
