package counters

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCounter(t *testing.T) *PendingCounter {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewPendingCounter(rdb, "bookings:pending")
}

func TestPendingCounter_IncrDecrGet(t *testing.T) {
	ctx := context.Background()
	counter := newTestCounter(t)

	require.NoError(t, counter.Incr(ctx, 1))
	require.NoError(t, counter.Incr(ctx, 1))
	require.NoError(t, counter.Incr(ctx, 1))

	count, err := counter.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, counter.Decr(ctx, 1))

	count, err = counter.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPendingCounter_MissingKeyIsZero(t *testing.T) {
	ctx := context.Background()
	counter := newTestCounter(t)

	count, err := counter.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPendingCounter_NegativeValueClampedToZero(t *testing.T) {
	ctx := context.Background()
	counter := newTestCounter(t)

	// Decr без предшествующего Incr уводит ключ в минус
	require.NoError(t, counter.Decr(ctx, 7))

	count, err := counter.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPendingCounter_StoresAreIndependent(t *testing.T) {
	ctx := context.Background()
	counter := newTestCounter(t)

	require.NoError(t, counter.Incr(ctx, 1))
	require.NoError(t, counter.Incr(ctx, 2))
	require.NoError(t, counter.Incr(ctx, 2))

	first, err := counter.Get(ctx, 1)
	require.NoError(t, err)
	second, err := counter.Get(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}
