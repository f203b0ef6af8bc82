package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ToRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleAdmin:
		return r, nil
	}
	return "", errors.New("invalid role")
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Avatar       Avatar

	CreatedAt time.Time
}

type Avatar struct {
	PublicID string
	URL      string
}

const MinPasswordLength = 8

// ValidateRegistration checks the user fields supplied at sign-up.
func ValidateRegistration(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return validationError("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return validationError("email is invalid")
	}
	if len(password) < MinPasswordLength {
		return validationError("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}
