package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack-io/tasktrack/internal/store"
)

// mockDBTX implements store.DBTX, recording Exec calls and returning a
// canned result. Query paths returning *sql.Row cannot be faked without a
// driver, so those are exercised by the integration tests instead.
type mockDBTX struct {
	execQuery string
	execArgs  []any
	execRes   sql.Result
	execErr   error
}

func (m *mockDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	m.execQuery = query
	m.execArgs = args
	return m.execRes, m.execErr
}

func (m *mockDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errors.New("not implemented")
}

func (m *mockDBTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (m *mockDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

// fakeResult implements sql.Result with a fixed rows-affected count.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestNewTaskStore(t *testing.T) {
	s := NewTaskStore(&mockDBTX{})
	assert.NotNil(t, s)
	assert.NotNil(t, s.db)
}

func TestNewTaskStorePanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() {
		NewTaskStore(nil)
	})
}

func TestUpdateUsesPositionalPlaceholders(t *testing.T) {
	db := &mockDBTX{execRes: fakeResult{rows: 1}}
	s := NewTaskStore(db)

	err := s.Update(context.Background(), 7, map[string]any{"title": "x"})
	require.NoError(t, err)

	assert.Equal(t, `UPDATE tasks SET data = $1 WHERE id = $2`, db.execQuery)
	require.Len(t, db.execArgs, 2)
	assert.JSONEq(t, `{"title":"x"}`, string(db.execArgs[0].([]byte)))
	assert.Equal(t, int64(7), db.execArgs[1])
}

func TestUpdateMapsZeroRowsToNotFound(t *testing.T) {
	db := &mockDBTX{execRes: fakeResult{rows: 0}}
	s := NewTaskStore(db)

	err := s.Update(context.Background(), 404, map[string]any{"title": "x"})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestDeleteMapsZeroRowsToNotFound(t *testing.T) {
	db := &mockDBTX{execRes: fakeResult{rows: 0}}
	s := NewTaskStore(db)

	err := s.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.Equal(t, `DELETE FROM tasks WHERE id = $1`, db.execQuery)
	assert.Equal(t, []any{int64(404)}, db.execArgs)
}

func TestDeleteReportsDriverError(t *testing.T) {
	db := &mockDBTX{execErr: errors.New("connection refused")}
	s := NewTaskStore(db)

	err := s.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrTaskNotFound)
}

func TestMapError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, mapError(nil))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		err := mapError(sql.ErrNoRows)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("not null violation keeps original", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: notNullViolationCode, ColumnName: "data"}
		err := mapError(fmt.Errorf("exec: %w", pgErr))
		require.Error(t, err)
		assert.ErrorIs(t, err, pgErr)
		assert.Contains(t, err.Error(), "not null violation")
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		cause := errors.New("network down")
		assert.Equal(t, cause, mapError(cause))
	})
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, checkRowsAffected(fakeResult{rows: 1}))
	assert.ErrorIs(t, checkRowsAffected(fakeResult{rows: 0}), store.ErrTaskNotFound)
	assert.Error(t, checkRowsAffected(fakeResult{err: errors.New("driver does not report rows")}))
	assert.Error(t, checkRowsAffected(nil))
}

func TestScanTask(t *testing.T) {
	t.Run("round-trips payload verbatim", func(t *testing.T) {
		task, err := scanTask(func(dest ...any) error {
			require.Len(t, dest, 2)
			*dest[0].(*int64) = 3
			*dest[1].(*[]byte) = []byte(`{"title":"Buy milk","description":null,"status":"pending","extra":true}`)
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, int64(3), task.ID)
		assert.Equal(t, map[string]any{
			"title":       "Buy milk",
			"description": nil,
			"status":      "pending",
			"extra":       true,
		}, task.Data)
	})

	t.Run("propagates scan error", func(t *testing.T) {
		_, err := scanTask(func(dest ...any) error {
			return sql.ErrNoRows
		})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		_, err := scanTask(func(dest ...any) error {
			*dest[1].(*[]byte) = []byte(`{not json`)
			return nil
		})
		assert.Error(t, err)
	})
}
