package api

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STORE_BACKEND", "POSTGRES_DSN", "REDIS_ADDR", "REDIS_DB", "SEED_FILE",
		"ENVIRONMENT", "TEMPORAL_ADDRESS", "TEMPORAL_NAMESPACE", "TEMPORAL_DISABLED",
		"LOG_LEVEL", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
		"PLACEMENT_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, client.DefaultHostPort, cfg.TemporalAddress)
	assert.Equal(t, client.DefaultNamespace, cfg.TemporalNamespace)
	assert.False(t, cfg.TemporalDisabled)
	assert.False(t, cfg.Shared())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.OTLPInsecure)
	assert.Equal(t, 30*time.Second, cfg.PlacementTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "redis://cache:6379/2")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SEED_FILE", "data/seed.yaml")
	t.Setenv("TEMPORAL_DISABLED", "yes")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "0")
	t.Setenv("PLACEMENT_TIMEOUT", "1500ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "data/seed.yaml", cfg.SeedFile)
	assert.True(t, cfg.TemporalDisabled)
	assert.True(t, cfg.Shared())
	assert.Equal(t, 1500*time.Millisecond, cfg.PlacementTimeout)

	settings := cfg.Observability("grubdash-api")
	assert.Equal(t, "grubdash-api", settings.ServiceName)
	assert.Equal(t, slog.LevelDebug, settings.LogLevel)
	assert.Equal(t, "collector:4318", settings.OTLPEndpoint)
	assert.False(t, settings.OTLPInsecure)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown backend":   {"STORE_BACKEND": "mongo"},
		"negative redis db": {"REDIS_DB": "-1"},
		"non numeric db":    {"REDIS_DB": "two"},
		"postgres no dsn":   {"STORE_BACKEND": "postgres"},
		"bad timeout":       {"PLACEMENT_TIMEOUT": "soon"},
		"zero timeout":      {"PLACEMENT_TIMEOUT": "0s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
