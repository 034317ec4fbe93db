// Package users is the user directory: uniqueness enforcement and lookup over
// an external repository. Password hashes never leave this package except to
// the credential verifier.
package users

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/egauth-dev/egauth/internal/models"
	"github.com/egauth-dev/egauth/internal/password"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("an account with that email address already exists")
	ErrUsernameTaken = errors.New("an account with that username already exists")
)

// PublicUser is a user record with secret fields removed, safe to return to
// a client.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Service exposes directory operations. All reads that cross the package
// boundary return PublicUser.
type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// FindByEmail returns the raw record including the password hash. It exists
// for credential verification only; handlers must never expose its result.
func (s *Service) FindByEmail(email string) (*models.User, error) {
	return s.repo.FindByEmail(email)
}

// FindByUsername returns the raw record including the password hash.
func (s *Service) FindByUsername(username string) (*models.User, error) {
	return s.repo.FindByUsername(username)
}

// FindByID returns the public projection of a user, or ErrNotFound.
func (s *Service) FindByID(id string) (*PublicUser, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Warn().Str("user_id", id).Msg("User not found")
		return nil, ErrNotFound
	}
	return publicView(user), nil
}

// CreateUser hashes the password and persists a new record. Email is checked
// before username; either collision fails with the matching taken error.
// The check-then-insert pair is not atomic; the store's unique indexes are
// the backstop under concurrent signups.
func (s *Service) CreateUser(email, username, plaintext string) (*PublicUser, error) {
	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn().Str("email", email).Msg("Attempt to create duplicate user by email")
		return nil, ErrEmailTaken
	}

	existing, err = s.repo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn().Str("username", username).Msg("Attempt to create duplicate user by username")
		return nil, ErrUsernameTaken
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("User created")
	return publicView(user), nil
}

func publicView(u *models.User) *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
