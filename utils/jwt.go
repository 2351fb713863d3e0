package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

func accessTTL() time.Duration {
	if v := os.Getenv("ACCESS_TOKEN_TTL_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return 30 * time.Minute
}

func refreshTTL() time.Duration {
	if v := os.Getenv("REFRESH_TOKEN_TTL_H"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return 7 * 24 * time.Hour
}

func GenerateAccessToken(userID uint, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"kind":   TokenKindAccess,
		"userId": userID,
		"email":  email,
		"exp":    time.Now().Add(accessTTL()).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// GenerateRefreshToken returns the signed token plus its jti and expiry,
// which the auth service records for revocation.
func GenerateRefreshToken(userID uint) (signed, jti string, expiresAt time.Time, err error) {
	jti = GenerateRandomToken(32)
	expiresAt = time.Now().Add(refreshTTL())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"kind":   TokenKindRefresh,
		"userId": userID,
		"jti":    jti,
		"exp":    expiresAt.Unix(),
	})
	signed, err = token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	return signed, jti, expiresAt, err
}

// ParseToken validates signature, expiry and the kind claim, returning the
// claims map on success.
func ParseToken(tokenString, kind string) (jwt.MapClaims, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return nil, errors.New("JWT_SECRET not set")
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if k, _ := claims["kind"].(string); k != kind {
		return nil, fmt.Errorf("expected %s token", kind)
	}
	return claims, nil
}

// ClaimUserID pulls the userId claim regardless of how JSON decoded it.
func ClaimUserID(claims jwt.MapClaims) (uint, bool) {
	switch id := claims["userId"].(type) {
	case float64:
		return uint(id), true
	case int64:
		return uint(id), true
	}
	return 0, false
}
