package adapter

import (
	"context"
	"time"
)

// RateLimiter defines the interface for request rate limiting.
type RateLimiter interface {
	// Allow reports whether the action identified by key may proceed.
	// Implementations count attempts within a fixed window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
