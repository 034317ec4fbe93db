package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CSRFTokenResponse carries the client-facing half of the double-submit pair
type CSRFTokenResponse struct {
	CSRFToken string `json:"csrfToken"`
}

// getCSRFToken bootstraps the anti-forgery handshake. It is a read path and
// must stay reachable without authentication.
func (s *Server) getCSRFToken(c *gin.Context) {
	token, err := s.csrfService.GenerateToken(c)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate CSRF token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, CSRFTokenResponse{CSRFToken: token})
}
