package user

import (
	"net/http"
	"time"

	"github.com/pazurkowo/pet-salon-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
)

// User is a salon client account. Appointments reference it as owner.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
