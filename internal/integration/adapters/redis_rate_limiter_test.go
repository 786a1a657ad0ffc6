package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisRateLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("allows attempts within the limit", func(t *testing.T) {
		_, client := newTestLimiter(t)
		limiter := NewRedisRateLimiter(client)

		for i := 0; i < 5; i++ {
			allowed, err := limiter.Allow(ctx, "login:1.2.3.4", 5, time.Minute)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !allowed {
				t.Fatalf("attempt %d should be allowed", i+1)
			}
		}
	})

	t.Run("blocks attempts over the limit", func(t *testing.T) {
		_, client := newTestLimiter(t)
		limiter := NewRedisRateLimiter(client)

		for i := 0; i < 5; i++ {
			if _, err := limiter.Allow(ctx, "login:1.2.3.4", 5, time.Minute); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		allowed, err := limiter.Allow(ctx, "login:1.2.3.4", 5, time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed {
			t.Fatal("sixth attempt should be blocked")
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		mr, client := newTestLimiter(t)
		limiter := NewRedisRateLimiter(client)

		for i := 0; i < 5; i++ {
			if _, err := limiter.Allow(ctx, "login:1.2.3.4", 5, time.Minute); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		mr.FastForward(time.Minute + time.Second)

		allowed, err := limiter.Allow(ctx, "login:1.2.3.4", 5, time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatal("attempt after window expiry should be allowed")
		}
	})

	t.Run("keys are limited independently", func(t *testing.T) {
		_, client := newTestLimiter(t)
		limiter := NewRedisRateLimiter(client)

		for i := 0; i < 5; i++ {
			if _, err := limiter.Allow(ctx, "login:1.2.3.4", 5, time.Minute); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		allowed, err := limiter.Allow(ctx, "login:5.6.7.8", 5, time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatal("different key should not be affected")
		}
	})
}
