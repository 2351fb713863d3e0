package services

import (
	"errors"
	"log"
	"time"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/config"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/models"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/utils"

	"gorm.io/gorm"
)

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func RegisterUser(email, password, firstName, lastName string) (*models.User, error) {
	if len(password) < 8 {
		return nil, invalidField("password", "must be at least 8 characters")
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:            email,
		Password:         hashedPassword,
		FirstName:        firstName,
		LastName:         lastName,
		VerificationCode: utils.GenerateNumericCode(6),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	// Best effort: a failed email must not fail registration, the code can
	// be re-sent later.
	if err := utils.SendVerificationEmail(user.Email, user.VerificationCode); err != nil {
		log.Printf("failed to send verification email to %s: %v", user.Email, err)
	}

	return &user, nil
}

func VerifyEmail(email, code string) error {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return ErrNotFound
	}
	if user.Verified {
		return nil
	}
	if code == "" || user.VerificationCode != code {
		return invalidField("code", "invalid verification code")
	}
	user.Verified = true
	user.VerificationCode = ""
	return config.DB.Save(&user).Error
}

func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func IssueTokenPair(user *models.User) (*TokenPair, error) {
	access, err := utils.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refresh, _, _, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// RefreshTokens rotates a refresh token: the presented token's jti is
// blacklisted and a fresh pair is issued. A revoked or expired token fails.
func RefreshTokens(refreshToken string) (*TokenPair, error) {
	claims, err := utils.ParseToken(refreshToken, utils.TokenKindRefresh)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	jti, _ := claims["jti"].(string)
	userID, ok := utils.ClaimUserID(claims)
	if jti == "" || !ok {
		return nil, ErrInvalidCredentials
	}

	var revoked models.RevokedToken
	err = config.DB.Where("jti = ?", jti).First(&revoked).Error
	if err == nil {
		return nil, ErrTokenRevoked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := revokeJTI(jti, userID, claims); err != nil {
		return nil, err
	}
	return IssueTokenPair(&user)
}

// LogoutUser blacklists the presented refresh token. Revoking twice is a
// no-op, not an error.
func LogoutUser(refreshToken string) error {
	claims, err := utils.ParseToken(refreshToken, utils.TokenKindRefresh)
	if err != nil {
		return ErrInvalidCredentials
	}
	jti, _ := claims["jti"].(string)
	userID, _ := utils.ClaimUserID(claims)
	if jti == "" {
		return ErrInvalidCredentials
	}
	return revokeJTI(jti, userID, claims)
}

func revokeJTI(jti string, userID uint, claims map[string]interface{}) error {
	expiresAt := time.Now().Add(7 * 24 * time.Hour)
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}
	row := models.RevokedToken{JTI: jti, UserID: userID, ExpiresAt: expiresAt}
	return config.DB.Where("jti = ?", jti).FirstOrCreate(&row).Error
}

func ForgotPassword(email string) error {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		// Do not reveal whether the account exists.
		return nil
	}

	user.ResetToken = utils.GenerateNumericCode(6)
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	if err := utils.SendResetEmail(user.Email, user.ResetToken); err != nil {
		log.Printf("failed to send reset email to %s: %v", user.Email, err)
	}
	return nil
}

// ResetPassword checks the code against the account it was issued for. The
// 6-digit code alone never matches, it has to come with the right email.
func ResetPassword(email, code, newPassword string) error {
	if len(newPassword) < 8 {
		return invalidField("new_password", "must be at least 8 characters")
	}

	var user models.User
	err := config.DB.
		Where("email = ? AND reset_token = ? AND reset_token <> ''", email, code).
		First(&user).Error
	if err != nil {
		return invalidField("code", "invalid or expired code")
	}
	if time.Now().After(user.ResetTokenExp) {
		return invalidField("code", "invalid or expired code")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
