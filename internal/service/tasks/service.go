// Package tasks provides the application service orchestrating task
// mutations against the durable store and keeping the cached task count in
// lockstep with creates and deletes.
package tasks

import (
	"context"

	"github.com/tasktrack-io/tasktrack/internal/domain"
)

// TaskService provides methods for creating, reading, updating, and
// deleting tasks, plus the reconciled task count.
type TaskService interface {
	// Create validates and persists a new task, applying attribute
	// defaults, then increments the cached counter. The insert happens
	// first; the counter is only touched after the durable write succeeds.
	//
	// Returns:
	//   - (*domain.Task, nil): the created task with its store-assigned id
	//   - (nil, domain.ErrTitleRequired): when the title is missing, blank,
	//     or not a string; nothing is written in that case
	//   - (nil, error): store or cache failure
	Create(ctx context.Context, attrs map[string]any) (*domain.Task, error)

	// List returns all tasks in store order.
	List(ctx context.Context) ([]domain.Task, error)

	// Get returns the task with the given id, or store.ErrTaskNotFound.
	Get(ctx context.Context, id int64) (*domain.Task, error)

	// Update applies a shallow merge of patch onto the existing attribute
	// bag and persists the result. Patch keys win; keys not mentioned are
	// preserved; nested objects are replaced wholesale. The cached counter
	// is not touched. Returns store.ErrTaskNotFound if the task does not
	// exist.
	Update(ctx context.Context, id int64, patch map[string]any) (*domain.Task, error)

	// Delete removes the task with the given id, then decrements the
	// cached counter. Returns store.ErrTaskNotFound if nothing was
	// deleted; the counter is untouched in that case.
	Delete(ctx context.Context, id int64) error

	// TaskCount returns the cached task count, lazily initializing it from
	// a durable recount when the cache key is absent.
	TaskCount(ctx context.Context) (int64, error)
}
