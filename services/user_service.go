package services

import (
	"fmt"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/config"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/models"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/utils"
)

type ProfileInput struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	Gender         string  `json:"gender"`
	FitnessGoal    string  `json:"fitness_goal"`
	ProfilePicture string  `json:"profile_picture"` // base64, uploaded to S3
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, ErrNotFound
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"height":          user.Height,
		"weight":          user.Weight,
		"gender":          user.Gender,
		"fitness_goal":    user.FitnessGoal,
		"profile_picture": user.ProfilePicture,
		"verified":        user.Verified,
		"created_at":      user.CreatedAt,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return ErrNotFound
	}

	if input.Height < 0 {
		return invalidField("height", "must not be negative")
	}
	if input.Weight < 0 {
		return invalidField("weight", "must not be negative")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.FitnessGoal != "" {
		user.FitnessGoal = input.FitnessGoal
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, fmt.Sprintf("profiles/%d", user.ID))
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

// DeactivateUser disables the account. Users are never hard-deleted so
// owned rows keep a valid owner.
func DeactivateUser(userID uint) error {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return ErrNotFound
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
