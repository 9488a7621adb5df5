package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/stockyard")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "stockyard", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.True(t, cfg.Audit.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/stockyard")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("HTTP_READ_TIMEOUT", "5s")
	t.Setenv("AUDIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, int32(50), cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.False(t, cfg.Audit.Enabled)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("TEST_INT", 7))

	t.Setenv("TEST_DURATION", "garbage")
	assert.Equal(t, time.Minute, getEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_BOOL", "yes-please")
	assert.True(t, getEnvBool("TEST_BOOL", true))
}
