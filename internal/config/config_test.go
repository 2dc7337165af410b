package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://u:p@localhost:5432/ticktocker")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("APP_PUBLIC_URL", "https://tick.example/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout.Duration())
	assert.Equal(t, 60*time.Second, cfg.Redis.DefaultTTL.Duration())
	assert.Equal(t, 7*24*time.Hour, cfg.Session.TTL.Duration())
	assert.Equal(t, "https://tick.example", cfg.App.PublicURL)
	assert.False(t, cfg.Session.CookieSecure)
}

func TestLoadRedisURLOverridesAddr(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://u:p@localhost:5432/ticktocker")
	t.Setenv("REDIS_ADDR", "ignored:1")
	t.Setenv("REDIS_URL", "redis://default:pw@redis.internal:35459/3")
	t.Setenv("HTTP_WRITE_TIMEOUT", "15")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:35459", cfg.Redis.Addr)
	assert.Equal(t, "pw", cfg.Redis.Password)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout.Duration())
}

func TestLoadProductionForcesSecureCookie(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://u:p@localhost:5432/ticktocker")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Session.CookieSecure)
}

func TestNormalizeRejectsBadConfig(t *testing.T) {
	cfg := Config{}
	assert.ErrorContains(t, cfg.normalize(), "REDIS_ADDR or REDIS_URL is required")

	cfg = Config{Redis: RedisConfig{Addr: "localhost:6379"}, PG: PGConfig{MinConns: 5, MaxConns: 2}}
	assert.ErrorContains(t, cfg.normalize(), "PG_MIN_CONNS")

	cfg = Config{Redis: RedisConfig{URL: "memcached://x"}}
	assert.ErrorContains(t, cfg.normalize(), "REDIS_URL")
}

func TestSecondsSetValue(t *testing.T) {
	var s Seconds
	require.NoError(t, s.SetValue("90"))
	assert.Equal(t, 90*time.Second, s.Duration())
	assert.Error(t, s.SetValue("later"))
}
