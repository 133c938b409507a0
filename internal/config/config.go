package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration required by the service.
// It is built once in main and passed to each component; no globals.
type Config struct {
	DBURL       string
	JWTSecret   string
	BaseURL     string
	Port        string
	TokenTTL    time.Duration
	UniqueEmail bool
}

const (
	defaultBaseURL  = "http://localhost:8080"
	defaultPort     = "8080"
	defaultTokenTTL = 24 * time.Hour
)

// Load reads required values from environment variables.
// A .env file in the working directory is honored for local dev.
func Load() (Config, error) {
	// Ignore a missing .env; real environments set vars directly.
	_ = godotenv.Load()

	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return Config{}, errors.New("DB_URL required")
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	baseURL := strings.TrimSpace(os.Getenv("BASE_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}

	ttl := defaultTokenTTL
	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, errors.New(`TOKEN_TTL must be a positive duration like "24h"`)
		}
		ttl = d
	}

	// Email uniqueness is a validation rule, not a schema constraint, so it
	// stays toggleable without a migration.
	uniqueEmail := true
	if raw := strings.TrimSpace(os.Getenv("UNIQUE_EMAIL")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, errors.New("UNIQUE_EMAIL must be a boolean")
		}
		uniqueEmail = v
	}

	return Config{
		DBURL:       dbURL,
		JWTSecret:   secret,
		BaseURL:     baseURL,
		Port:        port,
		TokenTTL:    ttl,
		UniqueEmail: uniqueEmail,
	}, nil
}
