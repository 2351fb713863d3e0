// services/steps_service.go
package services

import (
	"fmt"
	"time"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultDailyStepGoal = 10000
	minDailyStepGoal     = 1000
	maxDailyStepGoal     = 100000
	maxDailySteps        = 200000

	// Average stride: 1 km per 1250 steps, used when distance is not logged.
	stepsPerKM = 1250
)

// dayStart truncates to UTC midnight. All (user, date) keys use this so the
// uniqueness invariant holds regardless of the caller's clock.
func dayStart(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

type StepsService struct {
	db *gorm.DB
}

func NewStepsService(db *gorm.DB) *StepsService {
	return &StepsService{db: db}
}

// Upsert writes the step entry for (userID, date). A second write for the
// same date overwrites count, distance and goal in place — the composite
// unique index plus OnConflict makes the database serialize concurrent
// writes, so at most one row per (user, date) ever exists.
func (s *StepsService) Upsert(userID uint, date time.Time, steps int, distanceKM float64, goal int) (*models.StepEntry, bool, error) {
	if steps < 0 {
		return nil, false, invalidField("steps", "must not be negative")
	}
	if steps > maxDailySteps {
		return nil, false, invalidField("steps", fmt.Sprintf("must not exceed %d", maxDailySteps))
	}
	if distanceKM < 0 {
		return nil, false, invalidField("distance_km", "must not be negative")
	}
	if goal < 0 {
		return nil, false, invalidField("goal", "must not be negative")
	}
	day := dayStart(date)
	if day.After(dayStart(time.Now())) {
		return nil, false, invalidField("date", "cannot log steps for future dates")
	}
	if distanceKM == 0 && steps > 0 {
		distanceKM = float64(steps) / stepsPerKM
	}

	var existing int64
	if err := s.db.Model(&models.StepEntry{}).
		Where("user_id = ? AND date = ?", userID, day).
		Count(&existing).Error; err != nil {
		return nil, false, err
	}

	entry := models.StepEntry{
		UserID:     userID,
		Date:       day,
		Steps:      steps,
		DistanceKM: distanceKM,
		Goal:       goal,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"steps", "distance_km", "goal", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return nil, false, err
	}

	// Reload: on conflict the insert struct does not carry the winning row's id.
	var saved models.StepEntry
	if err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&saved).Error; err != nil {
		return nil, false, err
	}

	defaultGoal := s.defaultGoal(userID)
	if saved.Steps >= effectiveGoal(&saved, defaultGoal) {
		EmitAlert(userID, "goal", fmt.Sprintf("Step goal reached for %s: %d steps", day.Format("2006-01-02"), saved.Steps))
	}
	if err := s.refreshStreak(userID, defaultGoal); err != nil {
		return nil, false, err
	}

	return &saved, existing == 0, nil
}

func (s *StepsService) List(userID uint, from, to *time.Time) ([]models.StepEntry, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, ErrInvalidRange
	}
	q := s.db.Where("user_id = ?", userID).Order("date DESC")
	if from != nil {
		q = q.Where("date >= ?", dayStart(*from))
	}
	if to != nil {
		q = q.Where("date <= ?", dayStart(*to))
	}

	var entries []models.StepEntry
	err := q.Find(&entries).Error
	return entries, err
}

type StepSummary struct {
	Total           int     `json:"total"`
	Average         float64 `json:"average"`
	DaysMeetingGoal int     `json:"days_meeting_goal"`
	RangeStart      string  `json:"range_start"`
	RangeEnd        string  `json:"range_end"`
}

// Summary aggregates the inclusive [start, end] range. The average divides
// by calendar days, not by logged rows: missing days count as zero, since
// the point is trend visibility over calendar time. A range with no entries
// yields zeros, never an error.
func (s *StepsService) Summary(userID uint, start, end time.Time) (*StepSummary, error) {
	start, end = dayStart(start), dayStart(end)
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	var entries []models.StepEntry
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	defaultGoal := s.defaultGoal(userID)

	total := 0
	daysMeetingGoal := 0
	for i := range entries {
		total += entries[i].Steps
		if entries[i].Steps >= effectiveGoal(&entries[i], defaultGoal) {
			daysMeetingGoal++
		}
	}

	days := int(end.Sub(start).Hours()/24) + 1
	return &StepSummary{
		Total:           total,
		Average:         float64(total) / float64(days),
		DaysMeetingGoal: daysMeetingGoal,
		RangeStart:      start.Format("2006-01-02"),
		RangeEnd:        end.Format("2006-01-02"),
	}, nil
}

// effectiveGoal is the per-entry target, falling back to the user's default
// when the entry carries none.
func effectiveGoal(e *models.StepEntry, defaultGoal int) int {
	if e.Goal > 0 {
		return e.Goal
	}
	return defaultGoal
}

func (s *StepsService) defaultGoal(userID uint) int {
	var goal models.StepGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil || goal.DailyGoal <= 0 {
		return DefaultDailyStepGoal
	}
	return goal.DailyGoal
}

func (s *StepsService) GetGoal(userID uint) (*models.StepGoal, error) {
	goal := models.StepGoal{UserID: userID, DailyGoal: DefaultDailyStepGoal}
	err := s.db.Where("user_id = ?", userID).FirstOrCreate(&goal).Error
	return &goal, err
}

func (s *StepsService) SetGoal(userID uint, dailyGoal int) error {
	if dailyGoal < minDailyStepGoal {
		return invalidField("daily_goal", fmt.Sprintf("must be at least %d steps", minDailyStepGoal))
	}
	if dailyGoal > maxDailyStepGoal {
		return invalidField("daily_goal", fmt.Sprintf("must not exceed %d steps", maxDailyStepGoal))
	}

	goal := models.StepGoal{UserID: userID, DailyGoal: dailyGoal}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"daily_goal", "updated_at"}),
	}).Create(&goal).Error
}

// GetStreak recomputes before reading, so a streak that went stale since
// the last upsert reads as broken rather than frozen at its old value.
func (s *StepsService) GetStreak(userID uint) (*models.StepStreak, error) {
	if err := s.refreshStreak(userID, s.defaultGoal(userID)); err != nil {
		return nil, err
	}
	return s.loadStreak(userID)
}

func (s *StepsService) loadStreak(userID uint) (*models.StepStreak, error) {
	streak := models.StepStreak{UserID: userID}
	err := s.db.Where("user_id = ?", userID).FirstOrCreate(&streak).Error
	return &streak, err
}

// refreshStreak recomputes streaks from the most recent year of entries:
// current = consecutive met days ending today or yesterday, walking back
// one calendar day at a time. An older latest entry means the streak is
// already broken.
func (s *StepsService) refreshStreak(userID uint, defaultGoal int) error {
	var entries []models.StepEntry
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(366).
		Find(&entries).Error; err != nil {
		return err
	}

	streak, err := s.loadStreak(userID)
	if err != nil {
		return err
	}

	current := 0
	totalMet := 0
	var prev time.Time
	counting := true
	if len(entries) > 0 && entries[0].Date.Before(dayStart(time.Now()).AddDate(0, 0, -1)) {
		counting = false
	}
	for i := range entries {
		met := entries[i].Steps >= effectiveGoal(&entries[i], defaultGoal)
		if met {
			totalMet++
		}
		if counting {
			if i > 0 && !prev.AddDate(0, 0, -1).Equal(entries[i].Date) {
				counting = false // gap day breaks the run
			} else if met {
				current++
			} else {
				counting = false
			}
		}
		prev = entries[i].Date
	}

	streak.CurrentStreak = current
	if current > streak.LongestStreak {
		streak.LongestStreak = current
	}
	streak.TotalDaysGoalMet = totalMet
	streak.LastUpdated = dayStart(time.Now())
	return s.db.Save(streak).Error
}
