package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/tasktrack-io/tasktrack/internal/platform/logger"
	"github.com/tasktrack-io/tasktrack/internal/store"
)

// CountReconciler lazily (re)initializes the cached task count from the
// durable store when the cache key is absent. A present value, however
// stale, is trusted and never overwritten here: the only self-healing
// mechanism for counter drift is the key going away.
type CountReconciler struct {
	tasks   store.TaskStore
	counter store.CounterCache
	logger  *slog.Logger
}

// NewCountReconciler creates a CountReconciler over the given stores.
func NewCountReconciler(
	tasks store.TaskStore,
	counter store.CounterCache,
	logger *slog.Logger,
) *CountReconciler {
	if tasks == nil {
		panic("tasks store cannot be nil")
	}
	if counter == nil {
		panic("counter cache cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CountReconciler{
		tasks:   tasks,
		counter: counter,
		logger:  logger.With(slog.String("component", "count_reconciler")),
	}
}

// EnsureInitialized makes sure the counter key exists and returns its
// value. A present value (including "0") is parsed and returned untouched.
// An absent key is seeded from a full recount of the durable store.
//
// Two concurrent callers can both observe the key absent and both write;
// the writes carry the same instant-true count, so the last one winning is
// harmless. A cache connectivity error fails the call and is never treated
// as a miss.
func (r *CountReconciler) EnsureInitialized(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	value, ok, err := r.counter.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read cached count: %w", err)
	}
	if ok {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cached count %q is not an integer: %w", value, err)
		}
		return n, nil
	}

	n, err := r.tasks.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	if err := r.counter.Set(ctx, n); err != nil {
		return 0, fmt.Errorf("failed to seed cached count: %w", err)
	}

	log.Info("initialized task counter from store", slog.Int64("count", n))
	return n, nil
}
