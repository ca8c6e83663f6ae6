package api

import (
	"context"
	"log/slog"

	dishmemory "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/adapters/memory"
	dishpostgres "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/adapters/persistence/postgres"
	dishredis "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/adapters/persistence/redis"
	dishports "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/ports"
	ordermemory "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/memory"
	orderpostgres "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/persistence/postgres"
	orderredis "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/persistence/redis"
	orderports "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-grubdash-api/internal/platform/migrations"
	platformpostgres "github.com/Apurer/go-gin-grubdash-api/internal/platform/postgres"
	platformredis "github.com/Apurer/go-gin-grubdash-api/internal/platform/redis"
)

// Stores holds the repositories for both collections plus the backend actually in use.
type Stores struct {
	Backend string
	Dishes  dishports.Repository
	Orders  orderports.Repository
}

// Shared reports whether the stores are visible to other processes such as the worker.
func (s Stores) Shared() bool {
	return s.Backend == BackendPostgres || s.Backend == BackendRedis
}

func memoryStores() Stores {
	return Stores{
		Backend: BackendMemory,
		Dishes:  dishmemory.NewRepository(),
		Orders:  ordermemory.NewRepository(),
	}
}

// BuildStores connects the configured backend. An unreachable backend falls back to
// memory so the process still serves requests.
func BuildStores(ctx context.Context, cfg Config, logger *slog.Logger) (Stores, func()) {
	switch cfg.StoreBackend {
	case BackendPostgres:
		db, cleanup := platformpostgres.ConnectWithFallback(ctx, cfg.PostgresDSN, logger)
		if db == nil {
			return memoryStores(), cleanup
		}
		if err := migrations.Run(db); err != nil {
			logger.Warn("failed to migrate postgres schema, falling back to memory", slog.String("error", err.Error()))
			cleanup()
			return memoryStores(), func() {}
		}
		logger.Info("repositories configured with postgres")
		return Stores{
			Backend: BackendPostgres,
			Dishes:  dishpostgres.NewRepository(db),
			Orders:  orderpostgres.NewRepository(db),
		}, cleanup
	case BackendRedis:
		client, cleanup := platformredis.ConnectWithFallback(ctx, cfg.RedisAddr, cfg.RedisDB, logger)
		if client == nil {
			return memoryStores(), cleanup
		}
		logger.Info("repositories configured with redis")
		return Stores{
			Backend: BackendRedis,
			Dishes:  dishredis.NewRepository(client),
			Orders:  orderredis.NewRepository(client),
		}, cleanup
	default:
		logger.Info("repositories configured in memory")
		return memoryStores(), func() {}
	}
}
