package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Apurer/go-gin-grubdash-api/internal/app/api"
	"github.com/Apurer/go-gin-grubdash-api/internal/platform/seed"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	path := cfg.SeedFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		log.Fatal("no seed file given; pass a path or set SEED_FILE")
	}

	stores, cleanup := api.BuildStores(ctx, cfg, logger)
	defer cleanup()
	if !stores.Shared() {
		log.Fatalf("STORE_BACKEND %q is not reachable or not shared; nothing to seed", cfg.StoreBackend)
	}

	file, err := seed.Load(path)
	if err != nil {
		log.Fatalf("failed to load seed: %v", err)
	}
	result, err := seed.Apply(ctx, file, stores.Dishes, stores.Orders)
	if err != nil {
		log.Fatalf("failed to apply seed: %v", err)
	}
	log.Printf("seed completed: %d dishes, %d orders inserted", result.Dishes, result.Orders)
}
