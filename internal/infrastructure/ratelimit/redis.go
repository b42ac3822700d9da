package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter shares its counters between all server instances.
// The window starts at the first hit for a key.
type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
	limit  int
	window time.Duration
}

// NewRedisLimiter creates a limiter allowing limit hits per window
func NewRedisLimiter(client redis.UniversalClient, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: "hirecoder:ratelimit:" + prefix + ":",
		limit:  limit,
		window: window,
	}
}

// Allow implements Limiter
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	redisKey := l.prefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit %s: %w", redisKey, err)
	}
	if count == 1 {
		if err := l.client.PExpire(ctx, redisKey, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("rate limit %s: %w", redisKey, err)
		}
	}
	ttl, err := l.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit %s: %w", redisKey, err)
	}

	// a key left without expiry by a failed PEXPIRE still gets a full window
	if ttl < 0 {
		_ = l.client.PExpire(ctx, redisKey, l.window).Err()
		ttl = l.window
	}
	return decide(l.limit, count, ttl), nil
}

var _ Limiter = (*RedisLimiter)(nil)
