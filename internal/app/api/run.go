package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	grubdashserver "github.com/Apurer/go-gin-grubdash-api/go"

	dishobs "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/adapters/observability"
	dishapp "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/application"
	orderobs "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/observability"
	orderworkflows "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/workflows"
	orderapp "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/application"
	orderports "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
	platformobservability "github.com/Apurer/go-gin-grubdash-api/internal/platform/observability"
	"github.com/Apurer/go-gin-grubdash-api/internal/platform/seed"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/pipeline"
)

const serviceName = "grubdash-api"

// Run boots the GrubDash HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.Observability(serviceName))
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	stores, cleanupStores := BuildStores(ctx, cfg, logger)
	defer cleanupStores()

	if err := applySeed(ctx, cfg.SeedFile, stores, logger); err != nil {
		return err
	}

	var placement orderports.PlacementOrchestrator
	switch {
	case !stores.Shared():
		logger.Info("order placement runs inline", slog.String("backend", stores.Backend))
	default:
		temporalClient, err := DialTemporal(cfg, instruments, "temporal-client")
		if err != nil {
			logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
			break
		}
		defer temporalClient.Close()
		placement = orderworkflows.NewTemporalPlacement(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	router := NewRouter(stores, instruments, placement, orderapp.WithPlacementTimeout(cfg.PlacementTimeout))
	addr := ":" + cfg.Port
	logger.Info("GrubDash API listening", slog.String("addr", addr), slog.String("backend", stores.Backend))
	if err := router.Run(addr); err != nil {
		logger.Error("GrubDash API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// NewRouter builds the instrumented services over stores and mounts them on a gin engine.
// A nil placement stores new orders directly through the repository. extra is applied
// to the order service after the pipeline and placement options.
func NewRouter(stores Stores, instruments *platformobservability.Instruments, placement orderports.PlacementOrchestrator, extra ...orderapp.Option) *gin.Engine {
	logger := instruments.Logger
	pipelineOpts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithTracer(instruments.Tracer("internal.shared.pipeline")),
		pipeline.WithMeter(instruments.Meter("internal.shared.pipeline")),
	}

	dishService := dishobs.New(
		dishapp.NewService(stores.Dishes, dishapp.WithPipelineOptions(pipelineOpts...)),
		dishobs.WithLogger(logger),
		dishobs.WithTracer(instruments.Tracer("internal.dishes.application")),
		dishobs.WithMeter(instruments.Meter("internal.dishes.application")),
	)

	orderOpts := []orderapp.Option{orderapp.WithPipelineOptions(pipelineOpts...)}
	if placement != nil {
		orderOpts = append(orderOpts, orderapp.WithPlacement(placement))
	}
	orderOpts = append(orderOpts, extra...)
	orderService := orderobs.New(
		orderapp.NewService(stores.Orders, orderOpts...),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	return grubdashserver.NewRouterWithGinEngine(router, grubdashserver.ApiHandleFunctions{
		DishAPI:  grubdashserver.NewDishAPI(dishService),
		OrderAPI: grubdashserver.NewOrderAPI(orderService),
	})
}

func applySeed(ctx context.Context, path string, stores Stores, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	file, err := seed.Load(path)
	if err != nil {
		return err
	}
	result, err := seed.Apply(ctx, file, stores.Dishes, stores.Orders)
	if err != nil {
		return fmt.Errorf("apply seed file: %w", err)
	}
	logger.Info("seed applied", slog.String("file", path), slog.Int("dishes", result.Dishes), slog.Int("orders", result.Orders))
	return nil
}
