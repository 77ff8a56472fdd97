package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "DB_PATH", "DB_DRIVER", "REDIS_ADDR", "CACHE_ENABLED", "CACHE_TTL", "GRPC_PORT", "GRPC_REFLECTION_ENABLED", "LOCALE"} {
		t.Setenv(key, "")
	}

	cfg := LoadFromEnv()

	assert.Equal(t, &Config{
		AppEnv:    "development",
		DBPath:    ":memory:",
		DBDriver:  "sqlite3",
		RedisAddr: "localhost:6379",
		CacheTTL:  10 * time.Minute,
		GRPCPort:  50051,
		Locale:    "es",
	}, cfg)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PATH", "file:stats?mode=memory&cache=shared")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("GRPC_PORT", "6000")
	t.Setenv("GRPC_REFLECTION_ENABLED", "1")
	t.Setenv("LOCALE", "EN")

	cfg := LoadFromEnv()

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "file:stats?mode=memory&cache=shared", cfg.DBPath)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.True(t, cfg.GRPCReflectionEnabled)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("GRPC_PORT", "not-a-port")
	t.Setenv("CACHE_ENABLED", "maybe")
	t.Setenv("CACHE_TTL", "-5m")

	cfg := LoadFromEnv()

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		logger, err := NewLogger(&Config{AppEnv: env})
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
