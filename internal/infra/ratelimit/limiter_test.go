package ratelimit

import (
	"context"
	"testing"
	"time"

	"market/internal/errors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScripter emulates the INCR + PEXPIRE script against an in-memory map.
type fakeScripter struct {
	redis.Scripter

	counts map[string]int64
	err    error
}

func (f *fakeScripter) EvalSha(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	if f.err != nil {
		return redis.NewCmdResult(nil, f.err)
	}
	f.counts[keys[0]]++
	ttl, _ := args[0].(int64)

	return redis.NewCmdResult([]any{f.counts[keys[0]], ttl}, nil)
}

func TestRedisLimiter_Allow(t *testing.T) {
	scripter := &fakeScripter{counts: map[string]int64{}}
	limiter := NewRedisLimiter(scripter, 2, time.Minute)
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "rl:login:1.2.3.4")
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)
	assert.Equal(t, time.Minute, first.ResetIn)

	second, err := limiter.Allow(ctx, "rl:login:1.2.3.4")
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, 0, second.Remaining)

	third, err := limiter.Allow(ctx, "rl:login:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Equal(t, 0, third.Remaining)

	other, err := limiter.Allow(ctx, "rl:login:5.6.7.8")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestRedisLimiter_ScriptError(t *testing.T) {
	limiter := NewRedisLimiter(&fakeScripter{err: errors.New("connection refused")}, 2, time.Minute)

	_, err := limiter.Allow(context.Background(), "k")
	assert.ErrorContains(t, err, "rate limit script failed")
}

func TestDisabledLimiter(t *testing.T) {
	res, err := disabledLimiter{}.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}
