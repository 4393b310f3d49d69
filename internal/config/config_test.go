package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, int32(10), cfg.Psql.MaxConns)
	assert.Equal(t, "@every 1m", cfg.Scheduler.CloseExpiredSpec)
	assert.Equal(t, 20, cfg.RateLimit.ApplyLimit)
	assert.False(t, cfg.S3.Enabled())
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "Asia/Seoul", cfg.Location.String())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/trial?sslmode=disable")
	t.Setenv("REDIS_ADDRESS", "redis://cache:6379/0")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("S3_BUCKET", "campaign-images")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("RATELIMIT_APPLY_WINDOW", "30s")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, "redis://cache:6379/0", cfg.Redis.Addr)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.True(t, cfg.S3.Enabled())
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.ApplyWindow)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err := Load()
	assert.ErrorContains(t, err, "TIMEZONE")
}
