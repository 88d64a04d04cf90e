package store

import (
	"context"

	"github.com/tasktrack-io/tasktrack/internal/domain"
)

// TaskStore defines the interface for task persistence against the durable
// relational store. Each operation maps to a single parameterized statement;
// the attribute bag is serialized to and from the semi-structured column
// opaquely, with no interpretation of individual fields.
type TaskStore interface {
	// Insert persists a new task's attribute bag and returns the
	// store-assigned id.
	Insert(ctx context.Context, data map[string]any) (int64, error)

	// List retrieves all tasks in store order. No ordering is guaranteed
	// beyond whatever the store returns.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its id.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update replaces the attribute bag of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, data map[string]any) error

	// Delete removes a task by its id.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of task rows in the store. This is the
	// source of truth the counter cache is reconciled against.
	Count(ctx context.Context) (int64, error)
}
