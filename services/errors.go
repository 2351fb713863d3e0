package services

import (
	"errors"
	"fmt"
)

// Sentinel errors the controllers map to HTTP statuses. Services never
// import net/http.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidRange       = errors.New("start date must not be after end date")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrEmailTaken         = errors.New("email already registered")
)

// ValidationError carries the offending field so handlers can return
// per-field detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
