package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "hr-service", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Scheduler.MidnightOffset())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("SCHEDULER_MIDNIGHT_OFFSET_SECONDS", "30")
	t.Setenv("AUTH_BCRYPT_COST", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.App.Addr())
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.MidnightOffset())
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}

func TestLoad_QRSecretFallsBackToAuthSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "session-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "session-secret", cfg.QR.SigningSecret)

	t.Setenv("QR_SIGNING_SECRET", "qr-secret")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "qr-secret", cfg.QR.SigningSecret)
}

func TestLoad_ProductionRequiresExplicitSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod-secret", cfg.Auth.JWTSecret)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestSchedulerConfig_NegativeOffsetClamped(t *testing.T) {
	s := SchedulerConfig{MidnightOffsetSeconds: -10}
	assert.Equal(t, time.Duration(0), s.MidnightOffset())
}
