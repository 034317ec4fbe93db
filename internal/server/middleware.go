package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/egauth-dev/egauth/internal/auth"
)

const principalKey = "principal"

func setPrincipal(c *gin.Context, p *auth.Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the authenticated principal attached by AuthMiddleware
func GetPrincipal(c *gin.Context) (*auth.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}

	principal, ok := value.(*auth.Principal)
	return principal, ok
}

// AuthMiddleware validates the session token (bearer header or cookie) and
// attaches the re-resolved principal to the request context.
func AuthMiddleware(authService *auth.Service, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.ExtractToken(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication token"})
			return
		}

		principal, err := authService.ResolveToken(token)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to validate session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}
