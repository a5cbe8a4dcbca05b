package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uakit/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, clock *fakeClock, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithClock(clock.Now),
	)
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{Capacity: 0, RefillRate: 1, RefillInterval: time.Second}},
		{"zero refill rate", ratelimiter.Config{Capacity: 1, RefillRate: 0, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(store, tt.cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}

	_, err := ratelimiter.NewBucket(nil, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}

func TestBucket_AllowAndRefill(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	b, _ := newBucket(t, clock, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second})
	ctx := context.Background()

	for i := range 3 {
		res, err := b.Allow(ctx, "ip:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 3, res.Limit)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := b.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, -1, res.Remaining)

	// A denied request does not push the bucket further into debt.
	res, err = b.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, -1, res.Remaining)

	clock.Advance(time.Second)
	res, err = b.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	clock.Advance(time.Hour)
	res, err = b.Status(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining, "refill is capped at capacity")
}

func TestBucket_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	b, store := newBucket(t, newFakeClock(), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	ctx := context.Background()

	res, err := b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, res.Allowed())

	res, err = b.Allow(ctx, "b")
	require.NoError(t, err)
	assert.True(t, res.Allowed())

	res, err = b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, 2, store.Len())
}

func TestBucket_AllowN(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newFakeClock(), ratelimiter.Config{Capacity: 10, RefillRate: 1, RefillInterval: time.Minute})
	ctx := context.Background()

	_, err := b.AllowN(ctx, "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	res, err := b.AllowN(ctx, "k", 7)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining)

	res, err = b.AllowN(ctx, "k", 4)
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	res, err = b.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining)
}

func TestBucket_Reset(t *testing.T) {
	t.Parallel()

	b, store := newBucket(t, newFakeClock(), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	ctx := context.Background()

	_, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	require.NoError(t, b.Reset(ctx, "k"))
	assert.Equal(t, 0, store.Len())

	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestResult_RetryAfter(t *testing.T) {
	t.Parallel()

	allowed := &ratelimiter.Result{Limit: 1, Remaining: 0, ResetAt: time.Now().Add(time.Minute)}
	assert.Zero(t, allowed.RetryAfter())

	denied := &ratelimiter.Result{Limit: 1, Remaining: -1, ResetAt: time.Now().Add(time.Minute)}
	assert.Greater(t, denied.RetryAfter(), 50*time.Second)

	past := &ratelimiter.Result{Limit: 1, Remaining: -1, ResetAt: time.Now().Add(-time.Minute)}
	assert.Zero(t, past.RetryAfter())
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(time.Millisecond))
	assert.NotPanics(t, func() {
		store.Close()
		store.Close()
	})
}

func TestMemoryStore_OptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { ratelimiter.WithClock(nil) })
	assert.Panics(t, func() { ratelimiter.WithStaleAfter(0) })
}
