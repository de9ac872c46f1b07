// Package authservice implements user registration and the simulated login
// flow. Passwords are stored and compared verbatim and the issued token is a
// readable placeholder; this mirrors the platform's simulated persistence
// and is not a credential system.
package authservice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aruales/apuntes/internal/apperr"
	"github.com/aruales/apuntes/internal/models"
	"github.com/aruales/apuntes/internal/store"
)

// LoginResult carries the issued token and the user's public profile.
type LoginResult struct {
	Token string
	User  models.Profile
}

// Service manages user accounts.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService creates an auth service.
func NewService(s *store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// Register creates a user. The id is the creation time in milliseconds since
// epoch, stringified. Emails are unique by exact match.
func (s *Service) Register(_ context.Context, name, email, password string) (string, error) {
	user := models.User{
		ID:       strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:     name,
		Email:    email,
		Password: password,
	}
	if err := s.store.AddUser(user); err != nil {
		return "", fmt.Errorf("register %s: %w", email, err)
	}
	return "Registration successful. You can now log in.", nil
}

// Login checks the credentials and issues a placeholder token embedding the
// user id and the current timestamp.
func (s *Service) Login(_ context.Context, email, password string) (LoginResult, error) {
	user, ok := s.store.FindUserByEmail(email)
	if !ok || user.Password != password {
		return LoginResult{}, apperr.ErrInvalidCredentials
	}
	token := fmt.Sprintf("simulated-token-%s-%d", user.ID, s.now().UnixMilli())
	return LoginResult{Token: token, User: user.Profile()}, nil
}

// Users lists all registered users without passwords. Dev/debug surface.
func (s *Service) Users(_ context.Context) []models.Profile {
	users := s.store.Users()
	profiles := make([]models.Profile, len(users))
	for i, u := range users {
		profiles[i] = u.Profile()
	}
	return profiles
}
