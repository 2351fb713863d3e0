package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email            string `gorm:"uniqueIndex;not null"`
	Password         string `gorm:"not null"` // bcrypt hash
	FirstName        string
	LastName         string
	Height           float64 // cm
	Weight           float64 // kg
	Gender           string  `gorm:"size:10"`
	FitnessGoal      string
	ProfilePicture   string
	Verified         bool
	VerificationCode string `gorm:"size:6"`
	ResetToken       string
	ResetTokenExp    time.Time
	Disabled         bool
}
