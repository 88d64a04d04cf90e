package tasks

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack-io/tasktrack/internal/domain"
	"github.com/tasktrack-io/tasktrack/internal/platform/rediscache"
)

// mockTaskStore implements store.TaskStore for testing.
type mockTaskStore struct {
	mock.Mock
}

func (m *mockTaskStore) Insert(ctx context.Context, data map[string]any) (int64, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *mockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskStore) Update(ctx context.Context, id int64, data map[string]any) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *mockTaskStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTaskStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// newTestCounter starts an in-process Redis and returns a counter cache
// backed by it alongside the server for direct key manipulation.
func newTestCounter(t *testing.T) (*rediscache.Counter, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return rediscache.NewCounter(client), mr
}
