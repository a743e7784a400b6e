// Package ratelimit throttles PIN verification attempts with fixed-window
// counters kept in Redis, so every API replica shares one budget per client.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "technician_board:pin"

type counter interface {
	Incr(context.Context, string) *redis.IntCmd
	Expire(context.Context, string, time.Duration) *redis.BoolCmd
}

// PinLimiter allows at most limit attempts per key within window.
type PinLimiter struct {
	store  counter
	limit  int64
	window time.Duration
}

// NewRedisClient parses url, connects and verifies connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, errors.New("redis url is required")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewPinLimiter builds a limiter over a Redis client (or anything with Incr/Expire).
func NewPinLimiter(store counter, limit int, window time.Duration) *PinLimiter {
	return &PinLimiter{store: store, limit: int64(limit), window: window}
}

// Allow records one attempt for key and reports whether it is within budget.
func (l *PinLimiter) Allow(ctx context.Context, key string) (bool, int64, error) {
	if l == nil || l.store == nil {
		return true, 0, nil
	}
	k := fmt.Sprintf("%s:%s", keyPrefix, key)
	count, err := l.store.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("incr %s: %w", k, err)
	}
	if count == 1 && l.window > 0 {
		if err := l.store.Expire(ctx, k, l.window).Err(); err != nil {
			return false, count, fmt.Errorf("expire %s: %w", k, err)
		}
	}
	return count <= l.limit, count, nil
}
