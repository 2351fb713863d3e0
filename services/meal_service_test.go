// services/meal_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, uniqueEmail("meal-create"))
	svc := NewMealService(db)

	meal, err := svc.Create(user.ID, MealInput{Name: "Oatmeal", Type: "breakfast", Calories: 350, Protein: 12})
	require.NoError(t, err)
	assert.Equal(t, "breakfast", meal.Type)
	assert.False(t, meal.AteAt.IsZero(), "ate_at defaults to now")

	cases := []struct {
		name  string
		in    MealInput
		field string
	}{
		{"missing name", MealInput{Calories: 100}, "name"},
		{"unknown type", MealInput{Name: "Cake", Type: "midnight"}, "type"},
		{"negative calories", MealInput{Name: "Cake", Calories: -1}, "calories"},
		{"negative protein", MealInput{Name: "Cake", Protein: -1}, "protein"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(user.ID, tc.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestMealFavoriteToggleRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, uniqueEmail("meal-favorite"))
	svc := NewMealService(db)

	meal, err := svc.Create(user.ID, MealInput{Name: "Chicken salad", Type: "lunch", Calories: 420})
	require.NoError(t, err)
	assert.False(t, meal.Favorite)

	meal, err = svc.ToggleFavorite(user.ID, meal.ID)
	require.NoError(t, err)
	assert.True(t, meal.Favorite)

	favs, err := svc.ListFavorites(user.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)

	// Toggling again restores the original state without adding rows.
	meal, err = svc.ToggleFavorite(user.ID, meal.ID)
	require.NoError(t, err)
	assert.False(t, meal.Favorite)

	favs, err = svc.ListFavorites(user.ID)
	require.NoError(t, err)
	assert.Empty(t, favs)

	var count int64
	require.NoError(t, db.Model(&models.Meal{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMealOwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, uniqueEmail("meal-alice"))
	bob := createTestUser(t, db, uniqueEmail("meal-bob"))
	svc := NewMealService(db)

	meal, err := svc.Create(alice.ID, MealInput{Name: "Pasta", Type: "dinner", Calories: 600})
	require.NoError(t, err)

	_, err = svc.Get(bob.ID, meal.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.ToggleFavorite(bob.ID, meal.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(bob.ID, meal.ID), ErrNotFound)
}

func TestMealListDateWindow(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, uniqueEmail("meal-window"))
	svc := NewMealService(db)

	old := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 3, 10, 19, 30, 0, 0, time.UTC)

	_, err := svc.Create(user.ID, MealInput{Name: "Old meal", Calories: 100, AteAt: old})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, MealInput{Name: "Recent meal", Calories: 200, AteAt: recent})
	require.NoError(t, err)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	meals, err := svc.List(user.ID, &from, &to)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Recent meal", meals[0].Name)
}

func TestDailyGoalProgress(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, uniqueEmail("meal-progress"))
	meals := NewMealService(db)
	goals := NewDailyGoalService(db)

	require.NoError(t, goals.UpsertGoals(user.ID, 2000, 150, 250, 70))

	today := time.Now().UTC()
	_, err := meals.Create(user.ID, MealInput{Name: "Eggs", Calories: 300, Protein: 20, AteAt: today})
	require.NoError(t, err)
	_, err = meals.Create(user.ID, MealInput{Name: "Rice bowl", Calories: 700, Protein: 30, Carbs: 90, AteAt: today})
	require.NoError(t, err)

	goal, progress, err := goals.Progress(user.ID, today)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, goal.Calories, 0.001)

	cals := progress["calories"].(map[string]float64)
	assert.InDelta(t, 1000.0, cals["consumed"], 0.001)
	assert.InDelta(t, 0.5, cals["percent"], 0.001)

	prot := progress["protein"].(map[string]float64)
	assert.InDelta(t, 50.0, prot["consumed"], 0.001)
}

func TestDailyGoalUpsertReplaces(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, uniqueEmail("meal-goal-upsert"))
	goals := NewDailyGoalService(db)

	require.NoError(t, goals.UpsertGoals(user.ID, 1800, 120, 200, 60))
	require.NoError(t, goals.UpsertGoals(user.ID, 2200, 140, 220, 80))

	var count int64
	require.NoError(t, db.Model(&models.DailyGoal{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	goal, _, err := goals.Progress(user.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.InDelta(t, 2200.0, goal.Calories, 0.001)

	var verr *ValidationError
	require.ErrorAs(t, goals.UpsertGoals(user.ID, -1, 0, 0, 0), &verr)
}
