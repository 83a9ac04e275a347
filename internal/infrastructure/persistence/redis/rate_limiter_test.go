package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) *RateLimiter {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRateLimiter(NewClientFromRedis(rdb))
}

func TestRateLimiterAllowWithinLimit(t *testing.T) {
	limiter := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "ratelimit:10.0.0.1:/v1/blueprints", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d within limit must pass", i+1)
	}

	allowed, err := limiter.Allow(ctx, "ratelimit:10.0.0.1:/v1/blueprints", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "request over limit must be rejected")
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, fmt.Sprintf("ratelimit:10.0.0.%d:/v1/blueprints", i), 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	// 同一键第二次触发限流，不影响其他键
	allowed, err := limiter.Allow(ctx, "ratelimit:10.0.0.0:/v1/blueprints", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "ratelimit:10.0.0.9:/v1/blueprints", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}
