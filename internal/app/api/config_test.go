package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("TEMPORAL_ADDRESS", "")
	t.Setenv("TEMPORAL_NAMESPACE", "")
	t.Setenv("TEMPORAL_DISABLED", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("AVAILABILITY_CACHE_TTL_SECONDS", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Empty(t, cfg.PostgresDSN)
	require.Equal(t, client.DefaultHostPort, cfg.TemporalAddress)
	require.Equal(t, client.DefaultNamespace, cfg.TemporalNamespace)
	require.False(t, cfg.TemporalDisabled)
	require.Empty(t, cfg.RedisAddr)
	require.Zero(t, cfg.AvailabilityCacheTTL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TEMPORAL_DISABLED", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("AVAILABILITY_CACHE_TTL_SECONDS", "30")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.True(t, cfg.TemporalDisabled)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 30*time.Second, cfg.AvailabilityCacheTTL)
}

func TestLoadConfig_RejectsBadCacheTTL(t *testing.T) {
	t.Setenv("AVAILABILITY_CACHE_TTL_SECONDS", "zero")

	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("AVAILABILITY_CACHE_TTL_SECONDS", "-5")

	_, err = LoadConfig()
	require.Error(t, err)
}
