// services/meal_service.go
package services

import (
	"errors"
	"time"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/models"

	"gorm.io/gorm"
)

var mealTypes = map[string]bool{
	"breakfast": true, "lunch": true, "dinner": true, "snack": true, "other": true,
}

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealInput struct {
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Notes    string    `json:"notes"`
	AteAt    time.Time `json:"ate_at"`
}

func (in *MealInput) validate() *ValidationError {
	if in.Name == "" {
		return invalidField("name", "is required")
	}
	if in.Type == "" {
		in.Type = "other"
	}
	if !mealTypes[in.Type] {
		return invalidField("type", "unknown meal type")
	}
	if in.Calories < 0 {
		return invalidField("calories", "must not be negative")
	}
	if in.Protein < 0 {
		return invalidField("protein", "must not be negative")
	}
	if in.Carbs < 0 {
		return invalidField("carbs", "must not be negative")
	}
	if in.Fat < 0 {
		return invalidField("fat", "must not be negative")
	}
	if in.AteAt.IsZero() {
		in.AteAt = time.Now().UTC()
	}
	return nil
}

func (s *MealService) Create(userID uint, in MealInput) (*models.Meal, error) {
	if verr := in.validate(); verr != nil {
		return nil, verr
	}

	meal := models.Meal{
		UserID:   userID,
		Type:     in.Type,
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Notes:    in.Notes,
		AteAt:    in.AteAt,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) List(userID uint, from, to *time.Time) ([]models.Meal, error) {
	q := s.db.Where("user_id = ?", userID).Order("ate_at DESC")
	if from != nil {
		q = q.Where("ate_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("ate_at < ?", to.AddDate(0, 0, 1))
	}

	var meals []models.Meal
	err := q.Find(&meals).Error
	return meals, err
}

// ListFavorites returns the user's favourite meals, the reusable templates
// for quick re-logging.
func (s *MealService) ListFavorites(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND favorite = ?", userID, true).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Get(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Update(userID, mealID uint, in MealInput) (*models.Meal, error) {
	meal, err := s.Get(userID, mealID)
	if err != nil {
		return nil, err
	}
	if verr := in.validate(); verr != nil {
		return nil, verr
	}

	meal.Type = in.Type
	meal.Name = in.Name
	meal.Calories = in.Calories
	meal.Protein = in.Protein
	meal.Carbs = in.Carbs
	meal.Fat = in.Fat
	meal.Notes = in.Notes
	meal.AteAt = in.AteAt
	if err := s.db.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(userID, mealID uint) error {
	meal, err := s.Get(userID, mealID)
	if err != nil {
		return err
	}
	return s.db.Delete(meal).Error
}

// ToggleFavorite flips the flag on an owned meal. No new row is created;
// toggling twice restores the original state.
func (s *MealService) ToggleFavorite(userID, mealID uint) (*models.Meal, error) {
	meal, err := s.Get(userID, mealID)
	if err != nil {
		return nil, err
	}
	meal.Favorite = !meal.Favorite
	if err := s.db.Model(meal).Update("favorite", meal.Favorite).Error; err != nil {
		return nil, err
	}
	return meal, nil
}
