package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/checkin")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_RequiresDBURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/checkin")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("BASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("UNIQUE_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.UniqueEmail)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("BASE_URL", "https://events.example.com/")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("UNIQUE_EMAIL", "false")

	cfg, err := Load()
	require.NoError(t, err)

	// Trailing slash is stripped so QR payloads never contain "//checkin".
	assert.Equal(t, "https://events.example.com", cfg.BaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.False(t, cfg.UniqueEmail)
}

func TestLoad_RejectsBadTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadUniqueEmail(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("UNIQUE_EMAIL", "maybe")

	_, err := Load()
	assert.Error(t, err)
}
