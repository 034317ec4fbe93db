// Package auth holds the authentication core: session token issue and
// validation, request token extraction, and the orchestration of credential
// verification, signup, and login.
package auth

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/egauth-dev/egauth/internal/password"
	"github.com/egauth-dev/egauth/internal/users"
)

var (
	// ErrCredentialsRequired means the input was malformed, as opposed to
	// wrong. Callers map it to 400, not 401.
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// LoginResult is handed to the transport boundary, which moves Token into
// the session cookie and returns only User in the body.
type LoginResult struct {
	Token string
	User  *Principal
}

// Service composes the user directory, password hasher and token manager
// into login and signup flows.
type Service struct {
	users  *users.Service
	tokens *TokenManager
	logger zerolog.Logger
}

func NewService(users *users.Service, tokens *TokenManager, logger zerolog.Logger) *Service {
	return &Service{users: users, tokens: tokens, logger: logger}
}

// ValidateCredentials looks up the user by email and verifies the password.
// Wrong credentials are a nil result, not an error; only malformed input and
// backing-store failures are errors.
func (s *Service) ValidateCredentials(email, plaintext string) (*Principal, error) {
	if email == "" || plaintext == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		match, err := password.Verify(user.PasswordHash, plaintext)
		if err != nil {
			return nil, err
		}
		if match {
			return &Principal{ID: user.ID, Email: user.Email, Username: user.Username}, nil
		}
	}

	s.logger.Warn().Str("email", email).Msg("Failed login attempt")
	return nil, nil
}

// Login issues a session token for an already-verified principal.
func (s *Service) Login(p *Principal) (*LoginResult, error) {
	if p == nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(p)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", p.ID).Msg("User logged in")
	return &LoginResult{Token: token, User: p}, nil
}

// Signup creates the user and immediately logs it in.
func (s *Service) Signup(email, username, plaintext string) (*LoginResult, error) {
	s.logger.Info().Str("email", email).Msg("Processing signup")

	user, err := s.users.CreateUser(email, username, plaintext)
	if err != nil {
		return nil, err
	}

	return s.Login(&Principal{ID: user.ID, Email: user.Email, Username: user.Username})
}

// ResolveToken validates a presented token and re-resolves its subject
// against the user directory. A valid token over a deleted account fails:
// the token alone is not proof of a still-valid account.
func (s *Service) ResolveToken(token string) (*Principal, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(claims.Subject)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return &Principal{ID: user.ID, Email: user.Email, Username: user.Username}, nil
}
