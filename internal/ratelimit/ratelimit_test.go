package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	counts      map[string]int64
	expireCalls map[string]time.Duration
	incrErr     error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, expireCalls: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.incrErr != nil {
		return redis.NewIntResult(0, f.incrErr)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) Expire(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	f.expireCalls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func TestPinLimiter_FixedWindow(t *testing.T) {
	ctx := context.Background()
	store := newFakeCounter()
	limiter := NewPinLimiter(store, 2, time.Minute)

	allowed, count, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, store.expireCalls["technician_board:pin:10.0.0.1"])

	allowed, _, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Len(t, store.expireCalls, 1)

	allowed, count, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, int64(3), count)

	allowed, _, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestPinLimiter_StoreError(t *testing.T) {
	store := newFakeCounter()
	store.incrErr = errors.New("connection refused")
	limiter := NewPinLimiter(store, 2, time.Minute)

	allowed, _, err := limiter.Allow(context.Background(), "10.0.0.1")
	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestPinLimiter_NilAllowsEverything(t *testing.T) {
	var limiter *PinLimiter
	allowed, _, err := limiter.Allow(context.Background(), "x")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNewRedisClient_Validation(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "")
	assert.Error(t, err)

	_, err = NewRedisClient(context.Background(), "not-a-url://")
	assert.Error(t, err)
}
