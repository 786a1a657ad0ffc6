package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freight-ledger/backend/internal/application/adapter"
)

// redisRateLimiter implements the adapter.RateLimiter interface using a
// fixed-window counter per key.
type redisRateLimiter struct {
	client *redis.Client
	prefix string
}

// NewRedisRateLimiter creates a new Redis-backed rate limiter.
func NewRedisRateLimiter(client *redis.Client) adapter.RateLimiter {
	return &redisRateLimiter{
		client: client,
		prefix: "ratelimit",
	}
}

// Allow increments the counter for key and reports whether the attempt is
// within the limit. The window starts when the first attempt arrives.
func (l *redisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	return incr.Val() <= int64(limit), nil
}
