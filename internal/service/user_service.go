package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/port"
	"golang.org/x/crypto/bcrypt"
)

type SessionStore interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Delete(ctx context.Context, token string) error
}

var errBadCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)

type UserService struct {
	users    port.UserRepository
	sessions SessionStore
	cost     int
}

func NewUserService(users port.UserRepository, sessions SessionStore) (*UserService, error) {
	if users == nil {
		return nil, errors.New("users is nil")
	}
	if sessions == nil {
		return nil, errors.New("sessions is nil")
	}

	return &UserService{
		users:    users,
		sessions: sessions,
		cost:     bcrypt.DefaultCost,
	}, nil
}

type Registration struct {
	Name     string
	Email    string
	Password string
	Avatar   domain.Avatar
}

// Register creates a user with the default role and signs them in.
func (s *UserService) Register(ctx context.Context, reg Registration) (domain.User, string, error) {
	var u domain.User

	if err := domain.ValidateRegistration(reg.Name, reg.Email, reg.Password); err != nil {
		return u, "", fmt.Errorf("domain.ValidateRegistration: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return u, "", fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	userID, err := s.users.InsertUser(ctx, domain.User{
		Name:         strings.TrimSpace(reg.Name),
		Email:        reg.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Avatar:       reg.Avatar,
	})
	if err != nil {
		return u, "", fmt.Errorf("users.InsertUser: %w", err)
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return u, "", fmt.Errorf("users.GetUser: %w", err)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return u, "", fmt.Errorf("sessions.Create: %w", err)
	}

	return user, token, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	var u domain.User

	if email == "" || password == "" {
		return u, "", fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return u, "", errBadCredentials
		}
		return u, "", fmt.Errorf("users.GetUserByEmail: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return u, "", errBadCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return u, "", fmt.Errorf("sessions.Create: %w", err)
	}

	return user, token, nil
}

// DeleteUser removes an account. Its live sessions stop resolving to a user.
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("users.DeleteUser: %w", err)
	}

	return nil
}

func (s *UserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("sessions.Delete: %w", err)
	}

	return nil
}
