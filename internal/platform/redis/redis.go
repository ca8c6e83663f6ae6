// Package redis holds the shared Redis connection and an insertion-ordered JSON
// collection the Redis repositories are built on.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Connect dials Redis and verifies connectivity.
func Connect(ctx context.Context, addr string, db int) (*goredis.Client, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, fmt.Errorf("redis address is empty")
	}
	var opts *goredis.Options
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := goredis.ParseURL(addr)
		if err != nil {
			return nil, err
		}
		opts = parsed
	} else {
		opts = &goredis.Options{Addr: addr, DB: db}
	}
	client := goredis.NewClient(opts)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// ConnectWithFallback mirrors postgres.ConnectWithFallback: a failed dial is logged and
// reported as a nil client so the caller can fall back to memory.
func ConnectWithFallback(ctx context.Context, addr string, db int, logger *slog.Logger) (*goredis.Client, func()) {
	client, err := Connect(ctx, addr, db)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to connect to redis, falling back to in-memory repositories", slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	if logger != nil {
		logger.Info("redis connection established", slog.String("addr", client.Options().Addr))
	}
	return client, func() { _ = client.Close() }
}
