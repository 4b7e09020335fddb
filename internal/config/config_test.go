package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "0.0.0.0:3000", cfg.Server.Address())
	require.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	require.Equal(t, 5*time.Minute, cfg.KeepAlive.Interval)
	require.False(t, cfg.KeepAlive.Enabled())
	require.True(t, cfg.Cosmetic.StrictLookup)
	require.Equal(t, "none", cfg.Cache.Type)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("KEEPALIVE_URL", "https://relay.example.com")
	t.Setenv("KEEPALIVE_INTERVAL", "1m")
	t.Setenv("COSMETIC_STRICT_LOOKUP", "false")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8081, cfg.Server.Port)
	require.True(t, cfg.KeepAlive.Enabled())
	require.Equal(t, time.Minute, cfg.KeepAlive.Interval)
	require.False(t, cfg.Cosmetic.StrictLookup)
	require.Equal(t, "localhost:6380", cfg.Cache.RedisAddress())
}

func TestLoad_RejectsUnknownCacheType(t *testing.T) {
	t.Setenv("CACHE_TYPE", "memcached")

	_, err := Load()
	require.Error(t, err)
}
