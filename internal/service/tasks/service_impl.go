package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tasktrack-io/tasktrack/internal/domain"
	"github.com/tasktrack-io/tasktrack/internal/platform/logger"
	"github.com/tasktrack-io/tasktrack/internal/store"
)

// Verify interface compliance at compile time
var _ TaskService = (*taskServiceImpl)(nil)

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	tasks      store.TaskStore
	counter    store.CounterCache
	reconciler *CountReconciler
	logger     *slog.Logger
}

// NewTaskService creates a new TaskService implementation.
func NewTaskService(
	tasks store.TaskStore,
	counter store.CounterCache,
	logger *slog.Logger,
) TaskService {
	if tasks == nil {
		panic("tasks store cannot be nil")
	}
	if counter == nil {
		panic("counter cache cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:      tasks,
		counter:    counter,
		reconciler: NewCountReconciler(tasks, counter, logger),
		logger:     logger.With(slog.String("component", "task_service")),
	}
}

// Create implements TaskService.Create.
func (s *taskServiceImpl) Create(ctx context.Context, attrs map[string]any) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateTitle(attrs); err != nil {
		return nil, err
	}

	data := domain.NewTaskAttributes(attrs)

	id, err := s.tasks.Insert(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// The row is durable at this point. An increment failure leaves the
	// counter undercounting until the key is next lost and reseeded.
	if _, err := s.counter.Increment(ctx); err != nil {
		log.Warn("task created but counter increment failed; cached count is stale until reconciliation",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to increment task counter: %w", err)
	}

	return &domain.Task{ID: id, Data: data}, nil
}

// List implements TaskService.List.
func (s *taskServiceImpl) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get implements TaskService.Get.
func (s *taskServiceImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// Update implements TaskService.Update.
func (s *taskServiceImpl) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Task, error) {
	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load task for update: %w", err)
	}

	merged := domain.MergeAttributes(existing.Data, patch)

	if err := s.tasks.Update(ctx, id, merged); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &domain.Task{ID: id, Data: merged}, nil
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	// Same divergence window as Create, mirrored: the delete has committed,
	// so a decrement failure leaves the counter overcounting until reseed.
	if _, err := s.counter.Decrement(ctx); err != nil {
		log.Warn("task deleted but counter decrement failed; cached count is stale until reconciliation",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to decrement task counter: %w", err)
	}

	return nil
}

// TaskCount implements TaskService.TaskCount.
func (s *taskServiceImpl) TaskCount(ctx context.Context) (int64, error) {
	return s.reconciler.EnsureInitialized(ctx)
}
