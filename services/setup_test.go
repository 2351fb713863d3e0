package services

import (
	"fmt"
	"testing"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/config"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/models"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB gives each test a fresh in-memory database with the full
// schema. The auth/user services read config.DB, so it is pointed at the
// same handle.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	t.Cleanup(func() { config.DB = nil })

	t.Setenv("JWT_SECRET", "test-secret")
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		Email:     email,
		Password:  hash,
		FirstName: "Test",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s@example.com", prefix)
}
