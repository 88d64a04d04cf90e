package store

import "context"

// CounterCache defines the interface to the key-value store holding the
// derived task count. The cache provides no durability guarantee: the key
// can disappear at any time (restart, eviction, flush) and callers must
// treat absence as a reconciliation trigger, never as an error.
type CounterCache interface {
	// Get reads the counter. ok reports whether the key was present;
	// a connectivity failure is returned as an error and must not be
	// conflated with a miss.
	Get(ctx context.Context) (value string, ok bool, err error)

	// Set writes the counter with no expiration.
	Set(ctx context.Context, n int64) error

	// Increment atomically adds one to the counter and returns the new
	// value. An absent key is treated as zero, so the first increment
	// creates the key at 1.
	Increment(ctx context.Context) (int64, error)

	// Decrement atomically subtracts one from the counter and returns the
	// new value.
	Decrement(ctx context.Context) (int64, error)
}
