package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"TrendPost/internal/service/ratelimit"
)

// RateLimitConfig bounds per-client request rates.
type RateLimitConfig struct {
	// Burst is the bucket capacity per client.
	Burst float64
	// PerSecond is the refill rate per client.
	PerSecond float64
	// PruneEvery controls how often idle client buckets are dropped.
	PruneEvery time.Duration
}

// RateLimit rejects requests above the per-client rate with 429. Clients
// are keyed by remote address as reported by Echo (X-Forwarded-For aware).
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.PerSecond <= 0 {
		cfg.PerSecond = 10
	}
	if cfg.PruneEvery <= 0 {
		cfg.PruneEvery = 5 * time.Minute
	}

	limiter := ratelimit.New()
	go func() {
		ticker := time.NewTicker(cfg.PruneEvery)
		defer ticker.Stop()
		for range ticker.C {
			limiter.Prune(cfg.PruneEvery)
		}
	}()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP(), cfg.Burst, cfg.PerSecond) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"status":  http.StatusTooManyRequests,
					"message": http.StatusText(http.StatusTooManyRequests),
				})
			}
			return next(c)
		}
	}
}
