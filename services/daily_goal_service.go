// services/daily_goal_service.go
package services

import (
	"errors"
	"time"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/models"

	"gorm.io/gorm"
)

type DailyGoalService struct {
	db *gorm.DB
}

func NewDailyGoalService(db *gorm.DB) *DailyGoalService {
	return &DailyGoalService{db: db}
}

func (s *DailyGoalService) UpsertGoals(userID uint, calories, protein, carbs, fat float64) error {
	if calories < 0 || protein < 0 || carbs < 0 || fat < 0 {
		return invalidField("goals", "targets must not be negative")
	}

	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		}
		return s.db.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat
	return s.db.Save(&goal).Error
}

// Progress compares the day's logged meals against the user's targets.
// Read-only and recomputed per request, nothing is persisted.
func (s *DailyGoalService) Progress(userID uint, date time.Time) (*models.DailyGoal, map[string]interface{}, error) {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		goal = models.DailyGoal{UserID: userID}
	}

	start := dayStart(date)
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Find(&meals).Error; err != nil {
		return &goal, nil, err
	}

	var cals, prot, carbs, fat float64
	for _, m := range meals {
		cals += m.Calories
		prot += m.Protein
		carbs += m.Carbs
		fat += m.Fat
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	progress := map[string]interface{}{
		"calories": map[string]float64{"consumed": cals, "goal": goal.Calories, "percent": pct(cals, goal.Calories)},
		"protein":  map[string]float64{"consumed": prot, "goal": goal.Protein, "percent": pct(prot, goal.Protein)},
		"carbs":    map[string]float64{"consumed": carbs, "goal": goal.Carbs, "percent": pct(carbs, goal.Carbs)},
		"fat":      map[string]float64{"consumed": fat, "goal": goal.Fat, "percent": pct(fat, goal.Fat)},
	}

	return &goal, progress, nil
}
