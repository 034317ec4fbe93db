package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("CSRF_SECRET", "csrf-secret")
	t.Setenv("DATABASE_URL", "egauth.sqlite")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.FrontendURL != "http://localhost:5173" {
		t.Errorf("FrontendURL = %q, want default", cfg.FrontendURL)
	}
	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true by default, want false")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func TestLoadRequiredSecrets(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{name: "missing JWT_SECRET", missing: "JWT_SECRET"},
		{name: "missing CSRF_SECRET", missing: "CSRF_SECRET"},
		{name: "missing DATABASE_URL", missing: "DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.missing, "")

			_, err := Load()
			if err == nil {
				t.Fatal("Load() error = nil, want missing-variable error")
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("Load() error = %v, want mention of %s", err, tt.missing)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8443")
	t.Setenv("FRONTEND_URL", "https://app.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if cfg.Port != 8443 {
		t.Errorf("Port = %d, want 8443", cfg.Port)
	}
	if cfg.FrontendURL != "https://app.example.com" {
		t.Errorf("FrontendURL = %q", cfg.FrontendURL)
	}
}

func TestLoadRejectsMalformedFrontendURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "no scheme", url: "localhost:5173"},
		{name: "wrong scheme", url: "ftp://example.com"},
		{name: "scheme only", url: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv("FRONTEND_URL", tt.url)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with FRONTEND_URL=%q error = nil, want invalid-origin error", tt.url)
			}
		})
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want invalid PORT error")
	}
}
