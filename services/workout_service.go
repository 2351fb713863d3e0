// services/workout_service.go
package services

import (
	"errors"
	"time"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/models"

	"gorm.io/gorm"
)

var workoutTypes = map[string]bool{
	"running": true, "cycling": true, "swimming": true, "walking": true,
	"gym": true, "yoga": true, "pilates": true, "hiit": true,
	"cardio": true, "strength": true, "sports": true, "other": true,
}

var workoutIntensities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

var workoutStatuses = map[string]bool{
	"planned": true, "in_progress": true, "completed": true, "skipped": true,
}

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type WorkoutInput struct {
	Type           string  `json:"type"`
	Title          string  `json:"title"`
	Notes          string  `json:"notes"`
	Duration       int     `json:"duration"` // minutes
	Intensity      string  `json:"intensity"`
	CaloriesBurned float64 `json:"calories_burned"`
	DistanceKM     float64 `json:"distance_km"`
	Status         string  `json:"status"`
	WorkoutDate    string  `json:"workout_date"` // YYYY-MM-DD, defaults to today
}

// validate normalizes defaults and rejects out-of-range fields. Runs before
// any write so a bad payload never touches the database.
func (in *WorkoutInput) validate() (time.Time, *ValidationError) {
	if in.Title == "" {
		return time.Time{}, invalidField("title", "is required")
	}
	if in.Duration <= 0 {
		return time.Time{}, invalidField("duration", "must be greater than 0")
	}
	if in.Type == "" {
		in.Type = "other"
	}
	if !workoutTypes[in.Type] {
		return time.Time{}, invalidField("type", "unknown workout type")
	}
	if in.Intensity == "" {
		in.Intensity = "medium"
	}
	if !workoutIntensities[in.Intensity] {
		return time.Time{}, invalidField("intensity", "must be low, medium or high")
	}
	if in.Status == "" {
		in.Status = "planned"
	}
	if !workoutStatuses[in.Status] {
		return time.Time{}, invalidField("status", "unknown status")
	}
	if in.CaloriesBurned < 0 {
		return time.Time{}, invalidField("calories_burned", "must not be negative")
	}
	if in.DistanceKM < 0 {
		return time.Time{}, invalidField("distance_km", "must not be negative")
	}

	date := dayStart(time.Now().UTC())
	if in.WorkoutDate != "" {
		parsed, err := time.Parse("2006-01-02", in.WorkoutDate)
		if err != nil {
			return time.Time{}, invalidField("workout_date", "invalid date, use YYYY-MM-DD")
		}
		date = parsed
	}
	return date, nil
}

func (s *WorkoutService) Create(userID uint, in WorkoutInput) (*models.Workout, error) {
	date, verr := in.validate()
	if verr != nil {
		return nil, verr
	}

	w := models.Workout{
		UserID:         userID,
		Type:           in.Type,
		Title:          in.Title,
		Notes:          in.Notes,
		Duration:       in.Duration,
		Intensity:      in.Intensity,
		CaloriesBurned: in.CaloriesBurned,
		DistanceKM:     in.DistanceKM,
		Status:         in.Status,
		WorkoutDate:    date,
	}
	if err := s.db.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

type WorkoutFilter struct {
	From   *time.Time
	To     *time.Time
	Type   string
	Status string
}

func (s *WorkoutService) List(userID uint, f WorkoutFilter) ([]models.Workout, error) {
	q := s.db.Where("user_id = ?", userID).Order("workout_date DESC, created_at DESC")
	if f.From != nil {
		q = q.Where("workout_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("workout_date <= ?", *f.To)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var workouts []models.Workout
	err := q.Find(&workouts).Error
	return workouts, err
}

// Get scopes by owner in the query itself, so a foreign-owned id and a
// missing id are both ErrNotFound. Existence is never leaked.
func (s *WorkoutService) Get(userID, workoutID uint) (*models.Workout, error) {
	var w models.Workout
	err := s.db.Where("id = ? AND user_id = ?", workoutID, userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *WorkoutService) Update(userID, workoutID uint, in WorkoutInput) (*models.Workout, error) {
	w, err := s.Get(userID, workoutID)
	if err != nil {
		return nil, err
	}
	date, verr := in.validate()
	if verr != nil {
		return nil, verr
	}

	w.Type = in.Type
	w.Title = in.Title
	w.Notes = in.Notes
	w.Duration = in.Duration
	w.Intensity = in.Intensity
	w.CaloriesBurned = in.CaloriesBurned
	w.DistanceKM = in.DistanceKM
	w.Status = in.Status
	w.WorkoutDate = date
	if err := s.db.Save(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WorkoutService) Delete(userID, workoutID uint) error {
	w, err := s.Get(userID, workoutID)
	if err != nil {
		return err
	}
	return s.db.Delete(w).Error
}
