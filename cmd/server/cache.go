package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tasktrack-io/tasktrack/internal/config"
)

// setupAppCache creates the Redis client holding the task counter and
// verifies connectivity. Cancellation and timeouts beyond this startup ping
// are delegated to the client's own connection handling.
func setupAppCache(cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.Cache.Addr()})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping cache: %w", err)
	}

	logger.Info("Cache connection established", "addr", cfg.Cache.Addr())
	return client, nil
}
