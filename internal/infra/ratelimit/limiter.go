// Package ratelimit implements a fixed-window request limiter on Redis.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"market/config"
	"market/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// incrExpireScript increments the window counter and starts the window on the first hit.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// Result describes the state of a window after one hit.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// Limiter counts hits per key within a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

type redisLimiter struct {
	client redis.Scripter
	limit  int
	window time.Duration
}

// NewRedisLimiter builds a limiter allowing limit hits per window for each key.
func NewRedisLimiter(client redis.Scripter, limit int, window time.Duration) Limiter {
	return &redisLimiter{client: client, limit: limit, window: window}
}

// Allow records one hit for key.
func (l *redisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	raw, err := incrExpireScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Result{}, errors.Wrap(err, "rate limit script failed")
	}
	if len(raw) != 2 {
		return Result{}, errors.Errorf("unexpected rate limit reply %v", raw)
	}

	count, ttl := int(raw[0]), time.Duration(raw[1])*time.Millisecond
	if ttl < 0 {
		ttl = l.window
	}

	return Result{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: max(l.limit-count, 0),
		ResetIn:   ttl,
	}, nil
}

// disabledLimiter allows everything.
type disabledLimiter struct{}

func (disabledLimiter) Allow(context.Context, string) (Result, error) {
	return Result{Allowed: true}, nil
}

// Params defines the dependencies of the limiter provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns the Redis limiter configured under rateLimit, or an allow-all
// limiter when rate limiting is disabled.
func New(params Params) Limiter {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Rate limiting disabled")

		return disabledLimiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The limiter fails open, so an unreachable Redis only warrants a warning.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.WarnContext(ctx, "Redis unreachable, rate limiting will fail open",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLimiter(client, cfg.Limit, cfg.Window)
}
