package models

import (
	"time"

	"gorm.io/gorm"
)

type Workout struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null"`
	Type           string    `gorm:"size:20;not null"` // "running"|"cycling"|...
	Title          string    `gorm:"size:200;not null"`
	Notes          string    `gorm:"type:text"`
	Duration       int       // minutes
	Intensity      string    `gorm:"size:10"` // "low"|"medium"|"high"
	CaloriesBurned float64
	DistanceKM     float64
	Status         string    `gorm:"size:20;default:planned"`
	WorkoutDate    time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
}
