package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileUpdate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, uniqueEmail("profile"))

	require.NoError(t, UpdateUserProfile(user.ID, ProfileInput{
		FirstName:   "Jane",
		Height:      172.5,
		Weight:      64,
		FitnessGoal: "endurance",
	}))

	profile, err := GetUserProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile["first_name"])
	assert.Equal(t, 172.5, profile["height"])
	assert.Equal(t, "endurance", profile["fitness_goal"])

	// Zero-valued fields are left alone on partial updates.
	require.NoError(t, UpdateUserProfile(user.ID, ProfileInput{Weight: 63}))
	profile, err = GetUserProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile["first_name"])
	assert.Equal(t, 63.0, profile["weight"])

	var verr *ValidationError
	require.ErrorAs(t, UpdateUserProfile(user.ID, ProfileInput{Height: -1}), &verr)
}

func TestDeactivateUserHidesProfile(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, uniqueEmail("deactivate"))

	require.NoError(t, DeactivateUser(user.ID))

	_, err := GetUserProfile(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deactivating again reports not found, same as any disabled account.
	assert.ErrorIs(t, DeactivateUser(user.ID), ErrNotFound)
}
