package api

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"

	orderapp "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/application"
	platformobservability "github.com/Apurer/go-gin-grubdash-api/internal/platform/observability"
)

// Store backends selectable through STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config carries environment-driven settings for the API and worker processes.
type Config struct {
	Port              string
	StoreBackend      string
	PostgresDSN       string
	RedisAddr         string
	RedisDB           int
	SeedFile          string
	Environment       string
	LogLevel          slog.Level
	OTLPEndpoint      string
	OTLPInsecure      bool
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
	PlacementTimeout  time.Duration
}

// Shared reports whether the configured backend is visible to other processes.
func (c Config) Shared() bool {
	return c.StoreBackend == BackendPostgres || c.StoreBackend == BackendRedis
}

// Observability derives the telemetry settings for the named process.
func (c Config) Observability(serviceName string) platformobservability.Settings {
	return platformobservability.Settings{
		ServiceName:  serviceName,
		Environment:  c.Environment,
		LogLevel:     c.LogLevel,
		OTLPEndpoint: c.OTLPEndpoint,
		OTLPInsecure: c.OTLPInsecure,
	}
}

// LoadConfig loads an optional .env file, reads environment variables, applies defaults,
// and validates basic constraints. Variables already set in the environment win over .env.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		StoreBackend:      strings.ToLower(envDefault("STORE_BACKEND", BackendMemory)),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		RedisAddr:         envDefault("REDIS_ADDR", "localhost:6379"),
		SeedFile:          strings.TrimSpace(os.Getenv("SEED_FILE")),
		Environment:       envDefault("ENVIRONMENT", "local"),
		LogLevel:          platformobservability.ParseLevel(os.Getenv("LOG_LEVEL")),
		OTLPEndpoint:      strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		OTLPInsecure:      strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_INSECURE")) != "0",
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		PlacementTimeout:  orderapp.DefaultPlacementTimeout,
	}
	switch cfg.StoreBackend {
	case BackendMemory, BackendPostgres, BackendRedis:
	default:
		return Config{}, fmt.Errorf("STORE_BACKEND must be one of memory, postgres, redis; got %q", cfg.StoreBackend)
	}
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil || db < 0 {
			return Config{}, fmt.Errorf("REDIS_DB must be a non-negative integer")
		}
		cfg.RedisDB = db
	}
	if raw := strings.TrimSpace(os.Getenv("PLACEMENT_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return Config{}, fmt.Errorf("PLACEMENT_TIMEOUT must be a positive duration such as 30s")
		}
		cfg.PlacementTimeout = timeout
	}
	if cfg.StoreBackend == BackendPostgres && cfg.PostgresDSN == "" {
		return Config{}, fmt.Errorf("POSTGRES_DSN is required when STORE_BACKEND=postgres")
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
