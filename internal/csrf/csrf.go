// Package csrf implements the double-submit-cookie anti-forgery scheme: a
// secret-derived token lives in an HTTP-only cookie, and the same token must
// be presented out-of-band (header or body field) on every unsafe-method
// request. The token binds to a session identifier derived from the request
// context, not to an authenticated user.
package csrf

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderName is checked before the csrfToken body field.
	HeaderName = "x-csrf-token"

	cookieName = "egauth.x-csrf-token"
	// The __Host- prefix locks the cookie to this origin (Secure, Path=/,
	// no Domain).
	hostCookieName = "__Host-" + cookieName

	// Development requests share one identifier; production binds to the
	// client network address and user agent. A deliberately weak binding,
	// not a session credential.
	devSessionID = "dev-session"

	cookieMaxAge = 3600
	nonceLength  = 32
)

// Service generates and validates double-submit tokens.
type Service struct {
	secret     []byte
	production bool
	logger     zerolog.Logger
}

func NewService(secret string, production bool, logger zerolog.Logger) *Service {
	return &Service{secret: []byte(secret), production: production, logger: logger}
}

// CookieName returns the name of the secret-bearing cookie for this
// environment.
func (s *Service) CookieName() string {
	if s.production {
		return hostCookieName
	}
	return cookieName
}

func (s *Service) sessionIdentifier(c *gin.Context) string {
	if !s.production {
		return devSessionID
	}

	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	ua := c.Request.UserAgent()
	if ua == "" {
		ua = "unknown"
	}
	return ip + "-" + ua
}

// token = hex(HMAC-SHA256(secret, sessionID + "!" + nonce)) + "." + hex(nonce)
func (s *Service) computeToken(sessionID string, nonce []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(sessionID))
	mac.Write([]byte{'!'})
	mac.Write(nonce)
	return hex.EncodeToString(mac.Sum(nil)) + "." + hex.EncodeToString(nonce)
}

// GenerateToken mints a token bound to the request's session identifier,
// stores it in the secret cookie, and returns the client-facing value.
// Tokens are reusable until the cookie expires.
func (s *Service) GenerateToken(c *gin.Context) (string, error) {
	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate CSRF nonce: %w", err)
	}

	token := s.computeToken(s.sessionIdentifier(c), nonce)

	if s.production {
		c.SetSameSite(http.SameSiteStrictMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(s.CookieName(), token, cookieMaxAge, "/", "", s.production, true)

	return token, nil
}

// ValidateToken recomputes the expected token from the cookie's nonce and
// the current request's session identifier and compares it against both the
// cookie and the presented value. It never fails outward: any problem,
// including a missing cookie, is false.
func (s *Service) ValidateToken(c *gin.Context) bool {
	cookieValue, err := c.Cookie(s.CookieName())
	if err != nil {
		return false
	}

	presented := s.presentedToken(c)
	if presented == "" {
		return false
	}

	_, nonceHex, found := strings.Cut(cookieValue, ".")
	if !found {
		return false
	}
	nonce, err := hex.DecodeString(nonceHex)
	if err != nil {
		return false
	}

	expected := s.computeToken(s.sessionIdentifier(c), nonce)
	return hmac.Equal([]byte(expected), []byte(cookieValue)) &&
		hmac.Equal([]byte(expected), []byte(presented))
}

// presentedToken reads the client-submitted token: header first, then the
// csrfToken body field. The body is re-buffered so handlers can still bind.
func (s *Service) presentedToken(c *gin.Context) string {
	if header := c.GetHeader(HeaderName); header != "" {
		return header
	}

	if c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		CSRFToken string `json:"csrfToken"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.CSRFToken
}

// Middleware gates unsafe methods. GET, HEAD and OPTIONS bypass validation
// entirely; POST, PUT, PATCH and DELETE reject with 403 when no token is
// presented, and again when the presented token fails validation.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if s.presentedToken(c) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "CSRF token is required"})
			return
		}

		if !s.ValidateToken(c) {
			s.logger.Warn().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Rejected request with invalid CSRF token")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid CSRF token"})
			return
		}

		c.Next()
	}
}
