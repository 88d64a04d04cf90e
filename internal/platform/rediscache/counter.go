// Package rediscache provides the Redis implementation of the counter cache
// interface defined in the internal/store package.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tasktrack-io/tasktrack/internal/store"
)

// CounterKey is the well-known cache key holding the task count as a
// decimal integer string.
const CounterKey = "taskCount"

// Client defines the minimal Redis surface the counter needs. It is
// implemented by *redis.Client.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Decr(ctx context.Context, key string) *redis.IntCmd
}

// Counter implements store.CounterCache on top of a Redis client.
// The key carries no expiration: it lives until the cache evicts it or
// restarts, and arithmetic goes through Redis's atomic INCR/DECR rather
// than any read-modify-write on our side.
type Counter struct {
	client Client
}

// NewCounter creates a Redis-backed counter cache.
func NewCounter(client Client) *Counter {
	if client == nil {
		panic("client cannot be nil")
	}
	return &Counter{client: client}
}

// Ensure Counter implements store.CounterCache interface
var _ store.CounterCache = (*Counter)(nil)

// Get implements store.CounterCache.Get. A redis.Nil reply is a miss;
// every other error is a cache-error and is never reported as a miss.
func (c *Counter) Get(ctx context.Context) (string, bool, error) {
	value, err := c.client.Get(ctx, CounterKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read counter: %w", err)
	}
	return value, true, nil
}

// Set implements store.CounterCache.Set
func (c *Counter) Set(ctx context.Context, n int64) error {
	if err := c.client.Set(ctx, CounterKey, n, 0).Err(); err != nil {
		return fmt.Errorf("failed to write counter: %w", err)
	}
	return nil
}

// Increment implements store.CounterCache.Increment
func (c *Counter) Increment(ctx context.Context) (int64, error) {
	n, err := c.client.Incr(ctx, CounterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}
	return n, nil
}

// Decrement implements store.CounterCache.Decrement
func (c *Counter) Decrement(ctx context.Context) (int64, error) {
	n, err := c.client.Decr(ctx, CounterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to decrement counter: %w", err)
	}
	return n, nil
}
