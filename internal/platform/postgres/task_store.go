package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tasktrack-io/tasktrack/internal/domain"
	"github.com/tasktrack-io/tasktrack/internal/platform/logger"
	"github.com/tasktrack-io/tasktrack/internal/store"
)

// TaskStore implements the store.TaskStore interface using a PostgreSQL
// database as the storage backend. Task attribute bags live in a single
// JSONB column and round-trip through the store verbatim.
type TaskStore struct {
	db store.DBTX
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewTaskStore(db store.DBTX) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &TaskStore{db: db}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Insert implements store.TaskStore.Insert
func (s *TaskStore) Insert(ctx context.Context, data map[string]any) (int64, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize task data: %w", err)
	}

	query := `INSERT INTO tasks (data) VALUES ($1) RETURNING id`

	var id int64
	if err := s.db.QueryRowContext(ctx, query, payload).Scan(&id); err != nil {
		log.Error("failed to insert task", "error", err)
		return 0, fmt.Errorf("failed to insert task: %w", mapError(err))
	}

	return id, nil
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `SELECT id, data FROM tasks`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tasks", "error", err)
		return nil, fmt.Errorf("failed to query tasks: %w", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task rows: %w", err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT id, data FROM tasks WHERE id = $1`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", mapError(err))
	}

	return task, nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, id int64, data map[string]any) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize task data: %w", err)
	}

	query := `UPDATE tasks SET data = $1 WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, payload, id)
	if err != nil {
		log.Error("failed to update task", "task_id", id, "error", err)
		return fmt.Errorf("failed to update task: %w", mapError(err))
	}

	return checkRowsAffected(result)
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query := `DELETE FROM tasks WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete task", "task_id", id, "error", err)
		return fmt.Errorf("failed to delete task: %w", mapError(err))
	}

	return checkRowsAffected(result)
}

// Count implements store.TaskStore.Count
func (s *TaskStore) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query := `SELECT COUNT(*) FROM tasks`

	var n int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		log.Error("failed to count tasks", "error", err)
		return 0, fmt.Errorf("failed to count tasks: %w", mapError(err))
	}

	return n, nil
}

// scanTask maps one (id, data) row into a domain.Task, deserializing the
// JSONB payload without interpreting individual fields.
func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var (
		id      int64
		payload []byte
	)
	if err := scan(&id, &payload); err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to deserialize task data: %w", err)
	}

	return &domain.Task{ID: id, Data: data}, nil
}
