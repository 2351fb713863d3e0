package models

import (
	"time"

	"gorm.io/gorm"
)

// One StepEntry per user per calendar day. A second write for the same
// date overwrites via the unique index, it never duplicates.
type StepEntry struct {
	gorm.Model
	UserID     uint      `gorm:"not null;uniqueIndex:idx_steps_user_date"`
	Date       time.Time `gorm:"not null;uniqueIndex:idx_steps_user_date"` // truncated to YYYY-MM-DD
	Steps      int       `gorm:"not null"`
	DistanceKM float64   // derived from steps when not supplied
	Goal       int       // per-entry target; 0 falls back to the user's StepGoal
}

// StepGoal holds the user's default daily step target.
type StepGoal struct {
	gorm.Model
	UserID    uint `gorm:"uniqueIndex;not null"`
	DailyGoal int  `gorm:"default:10000"`
}

type StepStreak struct {
	gorm.Model
	UserID           uint `gorm:"uniqueIndex;not null"`
	CurrentStreak    int
	LongestStreak    int
	TotalDaysGoalMet int
	LastUpdated      time.Time
}
