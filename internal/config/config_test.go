package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/flagquiz")

	cfg, err := Load()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
	assert.Nil(t, cfg)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/flagquiz")
	t.Setenv("REDIS_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 12, cfg.Quiz.Choices)
	assert.Equal(t, 24*time.Hour, cfg.Sessions.IdleTTL)
	assert.Equal(t, 10*time.Minute, cfg.Sessions.SweepInterval)
	assert.Equal(t, "assets/data/countries.json", cfg.Data.CountriesPath)
	assert.Equal(t, "assets/data/presets.json", cfg.Data.PresetsPath)
	assert.Equal(t, 20, cfg.DB.MaxConnections)
	assert.Equal(t, 30*time.Minute, cfg.DB.MaxConnLifetime)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.True(t, cfg.HTTP.Enabled)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.EqualValues(t, 10, cfg.Leaderboard.Size)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/flagquiz", dsn)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/flagquiz")
	t.Setenv("APP_ENV", "production")
	t.Setenv("QUIZ_CHOICES", "4")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SESSIONS_IDLE_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 4, cfg.Quiz.Choices)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Hour, cfg.Sessions.IdleTTL)
}

func TestDSN_Empty(t *testing.T) {
	_, err := DB{}.DSN()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}
