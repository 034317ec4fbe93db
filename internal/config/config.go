package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Secrets
	JWTSecret  string
	CSRFSecret string

	// Database Configuration
	Database DatabaseConfig

	// HTTP Configuration
	FrontendURL string
	Port        int

	// Environment ("production" or "development")
	Env string

	// Logging Configuration
	Logging LoggingConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// IsProduction reports whether the service runs with production hardening
// (secure cookies, __Host- CSRF cookie, real session identifiers).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load loads configuration from environment variables.
// Missing required secrets fail here, at startup, not at first use.
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	csrfSecret := os.Getenv("CSRF_SECRET")
	if csrfSecret == "" {
		return nil, fmt.Errorf("CSRF_SECRET environment variable is required")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}
	// The CORS layer panics on origins without an http(s) scheme; catch a
	// bad value here at startup instead.
	if u, err := url.Parse(frontendURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid FRONTEND_URL %q: must be an http or https origin", frontendURL)
	}

	port := 3000
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		port = p
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "json"
	}

	return &Config{
		JWTSecret:  jwtSecret,
		CSRFSecret: csrfSecret,
		Database: DatabaseConfig{
			URL: dbURL,
		},
		FrontendURL: frontendURL,
		Port:        port,
		Env:         env,
		Logging: LoggingConfig{
			Level:  logLevel,
			Format: logFormat,
		},
	}, nil
}
