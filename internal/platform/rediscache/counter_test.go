package rediscache

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCounter(t *testing.T) (*Counter, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCounter(client), mr
}

func TestGetDistinguishesMissFromValue(t *testing.T) {
	counter, mr := newTestCounter(t)
	ctx := context.Background()

	_, ok, err := counter.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.Set(CounterKey, "0")

	value, ok, err := counter.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "a stored zero is a present value, not a miss")
	assert.Equal(t, "0", value)
}

func TestGetReportsConnectivityErrorNotMiss(t *testing.T) {
	counter, mr := newTestCounter(t)
	mr.Close()

	_, ok, err := counter.Get(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
}

func TestSetWritesDecimalStringWithoutExpiration(t *testing.T) {
	counter, mr := newTestCounter(t)

	require.NoError(t, counter.Set(context.Background(), 3))

	value, err := mr.Get(CounterKey)
	require.NoError(t, err)
	assert.Equal(t, "3", value)
	assert.Zero(t, mr.TTL(CounterKey))
}

func TestIncrementCreatesKeyAtOne(t *testing.T) {
	counter, mr := newTestCounter(t)
	ctx := context.Background()

	n, err := counter.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	value, err := mr.Get(CounterKey)
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	counter, _ := newTestCounter(t)
	ctx := context.Background()

	require.NoError(t, counter.Set(ctx, 5))

	n, err := counter.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	n, err = counter.Decrement(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestArithmeticReportsConnectivityError(t *testing.T) {
	counter, mr := newTestCounter(t)
	mr.Close()

	_, err := counter.Increment(context.Background())
	assert.Error(t, err)

	_, err = counter.Decrement(context.Background())
	assert.Error(t, err)

	assert.Error(t, counter.Set(context.Background(), 1))
}
