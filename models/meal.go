package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged Meal (breakfast/lunch/…) with its nutrition snapshot.
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Type     string    `gorm:"size:20"` // "breakfast"|"lunch"|"dinner"|"snack"|"other"
	Name     string    `gorm:"size:200;not null"`
	Calories float64
	Protein  float64 // grams
	Carbs    float64 // grams
	Fat      float64 // grams
	Notes    string    `gorm:"type:text"`
	Favorite bool      `gorm:"index"`
	AteAt    time.Time `gorm:"index"`
}
