package models

import "time"

// RevokedToken blacklists a refresh token's jti after logout or rotation.
// Rows past ExpiresAt can be purged; an expired token fails validation anyway.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey"`
	JTI       string    `gorm:"size:36;uniqueIndex;not null"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}
