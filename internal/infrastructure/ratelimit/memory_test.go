package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("blocks requests exceeding limit", func(t *testing.T) {
		l := NewMemoryLimiter(2, time.Minute)

		for i := 0; i < 2; i++ {
			d, err := l.Allow(ctx, "a")
			require.NoError(t, err)
			assert.True(t, d.Allowed, "request %d should be allowed", i+1)
		}

		d, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, 0, d.Remaining)
		assert.Greater(t, d.RetryAfter, time.Duration(0))
		assert.LessOrEqual(t, d.RetryAfter, time.Minute)
	})

	t.Run("separate limits per key", func(t *testing.T) {
		l := NewMemoryLimiter(1, time.Minute)

		d, _ := l.Allow(ctx, "a")
		assert.True(t, d.Allowed)
		d, _ = l.Allow(ctx, "b")
		assert.True(t, d.Allowed)
		d, _ = l.Allow(ctx, "a")
		assert.False(t, d.Allowed)
	})

	t.Run("resets after the window", func(t *testing.T) {
		l := NewMemoryLimiter(1, time.Minute)
		now := time.Now()
		l.now = func() time.Time { return now }

		d, _ := l.Allow(ctx, "a")
		assert.True(t, d.Allowed)
		d, _ = l.Allow(ctx, "a")
		assert.False(t, d.Allowed)

		now = now.Add(61 * time.Second)
		d, _ = l.Allow(ctx, "a")
		assert.True(t, d.Allowed)
		assert.Equal(t, 0, d.Remaining)
	})

	t.Run("sweeps expired windows", func(t *testing.T) {
		l := NewMemoryLimiter(5, time.Second)
		now := time.Now()
		l.now = func() time.Time { return now }

		_, _ = l.Allow(ctx, "old")
		now = now.Add(2 * time.Second)
		_, _ = l.Allow(ctx, "new")

		assert.NotContains(t, l.windows, "old")
		assert.Contains(t, l.windows, "new")
	})
}
