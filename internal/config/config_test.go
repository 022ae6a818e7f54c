package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "lootcases", cfg.DBName)
	assert.Equal(t, "configs/cases.json", cfg.CasesPath)
	assert.Equal(t, time.Second, cfg.RateLimitWindow)
	assert.Equal(t, 5, cfg.RateLimitMaxOps)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RateLimitOverrides(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("RATE_LIMIT_WINDOW_MS", "250")
	t.Setenv("RATE_LIMIT_MAX_OPS", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.RateLimitWindow)
	assert.Equal(t, 2, cfg.RateLimitMaxOps)
}

func TestLoad_RejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("RATE_LIMIT_MAX_OPS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "app",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "cases",
	}
	assert.Equal(t, "postgres://app:secret@db:5433/cases?sslmode=disable", cfg.GetDBConnString())
}
