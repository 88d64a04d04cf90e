package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack-io/tasktrack/internal/store"
)

// openTestDB connects to the database named by TASKTRACK_TEST_DB_URL and
// resets the tasks table. Tests are skipped when the variable is unset so
// the suite stays runnable without a live Postgres.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("TASKTRACK_TEST_DB_URL")
	if url == "" {
		t.Skip("TASKTRACK_TEST_DB_URL not set; skipping database tests")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS tasks (id BIGSERIAL PRIMARY KEY, data JSONB NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`TRUNCATE tasks RESTART IDENTITY`)
	require.NoError(t, err)

	return db
}

func TestTaskStoreCRUD(t *testing.T) {
	db := openTestDB(t)
	s := NewTaskStore(db)
	ctx := context.Background()

	id, err := s.Insert(ctx, map[string]any{
		"title":       "Buy milk",
		"description": nil,
		"status":      "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	task, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Data["title"])
	assert.Nil(t, task.Data["description"])
	assert.Equal(t, "pending", task.Data["status"])

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = s.Update(ctx, id, map[string]any{"title": "Buy milk", "status": "done"})
	require.NoError(t, err)

	task, err = s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "done", task.Data["status"])

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	require.NoError(t, s.Delete(ctx, id))

	_, err = s.GetByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.ErrorIs(t, s.Delete(ctx, id), store.ErrTaskNotFound)
	assert.ErrorIs(t, s.Update(ctx, id, map[string]any{"title": "x"}), store.ErrTaskNotFound)
}

func TestTaskStorePreservesUnknownKeys(t *testing.T) {
	db := openTestDB(t)
	s := NewTaskStore(db)
	ctx := context.Background()

	id, err := s.Insert(ctx, map[string]any{
		"title":    "Buy milk",
		"priority": float64(3),
		"labels":   []any{"errand", "grocery"},
	})
	require.NoError(t, err)

	task, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, float64(3), task.Data["priority"])
	assert.Equal(t, []any{"errand", "grocery"}, task.Data["labels"])
}
