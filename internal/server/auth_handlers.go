package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egauth-dev/egauth/internal/auth"
	"github.com/egauth-dev/egauth/internal/users"
)

const sessionCookieMaxAge = 3600 // matches token ttl

// SignupRequest represents a signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=32,alphanumdash"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents a login request. Emptiness is checked by the
// credential validator so that missing fields map to 400, not 401.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse wraps the principal returned by login and signup. The session
// token travels only in the cookie, never in the body.
type UserResponse struct {
	User *auth.Principal `json:"user"`
}

// setSessionCookie binds the session token to the browser: httpOnly, lax,
// secure in production, expiring with the token.
func (s *Server) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.AccessTokenCookie, token, sessionCookieMaxAge, "/", "", s.config.IsProduction(), true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.AccessTokenCookie, "", -1, "/", "", s.config.IsProduction(), true)
}

func (s *Server) signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.authService.Signup(req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) || errors.Is(err, users.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to sign up user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	s.setSessionCookie(c, result.Token)
	c.JSON(http.StatusCreated, UserResponse{User: result.User})
}

func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	principal, err := s.authService.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrCredentialsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to validate credentials")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	result, err := s.authService.Login(principal)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	s.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, UserResponse{User: result.User})
}

func (s *Server) logout(c *gin.Context) {
	// Stateless tokens stay valid until expiry; logout only clears the
	// client cookie.
	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (s *Server) getProfile(c *gin.Context) {
	principal, exists := GetPrincipal(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, principal)
}
