package auth

import (
	"net/http"
	"strings"
)

const (
	bearerPrefix = "Bearer "

	// AccessTokenCookie is the session cookie name
	AccessTokenCookie = "access_token"
)

// extractor pulls a candidate token out of a request. Extractors form a
// small closed set tried in a fixed order, not a plugin registry.
type extractor func(r *http.Request) string

var extractors = []extractor{
	fromAuthorizationHeader,
	fromCookie,
}

// ExtractToken finds a session token on the request: the Authorization
// bearer header first, then the access_token cookie. First match wins.
func ExtractToken(r *http.Request) (string, bool) {
	for _, extract := range extractors {
		if token := extract(r); token != "" {
			return token, true
		}
	}
	return "", false
}

func fromAuthorizationHeader(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, bearerPrefix)
}

func fromCookie(r *http.Request) string {
	cookie, err := r.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
