package middleware

import (
	"log/slog"
	"strconv"

	"market/internal/delivery/api/response"
	deliverycontext "market/internal/delivery/context"
	domainerrors "market/internal/domain/errors"
	"market/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter ratelimit.Limiter
	Logger  *slog.Logger
}

// RateLimitMiddleware throttles credential endpoints per client IP.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: params.Limiter,
		logger:  params.Logger,
	}
}

// Limit counts requests under scope per client IP. Limiter failures let the
// request through.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + scope + ":" + c.RealIP()

			result, err := m.limiter.Allow(ctx, key)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable",
					slog.String("scope", scope),
					slog.Any("error", err),
				)

				return next(c)
			}

			if result.Limit > 0 {
				header := c.Response().Header()
				header.Set(headerRateLimitLimit, strconv.Itoa(result.Limit))
				header.Set(headerRateLimitRemaining, strconv.Itoa(result.Remaining))
			}

			if !result.Allowed {
				retryAfter := max(int(result.ResetIn.Seconds()), 1)
				c.Response().Header().Set(headerRetryAfter, strconv.Itoa(retryAfter))

				return response.HandleAppError(c, domainerrors.ErrRateLimited)
			}

			return next(c)
		}
	}
}
