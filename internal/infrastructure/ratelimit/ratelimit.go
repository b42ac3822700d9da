// Package ratelimit provides fixed-window request limiters backed by Redis
// or process memory.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of a single Allow call
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// RetryAfter is how long until the current window resets
	RetryAfter time.Duration
}

// Limiter counts hits per key within a fixed window
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

func decide(limit int, count int64, ttl time.Duration) Decision {
	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:    count <= int64(limit),
		Limit:      limit,
		Remaining:  remaining,
		RetryAfter: ttl,
	}
}
