package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		cookie    string
		wantToken string
		wantOK    bool
	}{
		{name: "no sources", wantOK: false},
		{name: "bearer header", header: "Bearer abc", wantToken: "abc", wantOK: true},
		{name: "cookie", cookie: "xyz", wantToken: "xyz", wantOK: true},
		{name: "header wins over cookie", header: "Bearer abc", cookie: "xyz", wantToken: "abc", wantOK: true},
		{name: "malformed header falls back to cookie", header: "Token abc", cookie: "xyz", wantToken: "xyz", wantOK: true},
		{name: "empty bearer token ignored", header: "Bearer ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: tt.cookie})
			}

			token, ok := ExtractToken(r)
			if ok != tt.wantOK || token != tt.wantToken {
				t.Errorf("ExtractToken() = (%q, %v), want (%q, %v)", token, ok, tt.wantToken, tt.wantOK)
			}
		})
	}
}
