package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kartik-3/hall-booking/internal/config"
)

// RateLimit returns a fixed-window per-IP limiter backed by Redis.
// Each window is a counter keyed on prefix:ip:window-number, bumped
// with INCR and expired after the window passes.  When the limiter is
// disabled or no Redis client is available it becomes a pass-through,
// and any Redis error lets the request proceed rather than failing it.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			now := time.Now()
			window := now.UnixMilli() / cfg.Window.Milliseconds()
			key := strings.Join([]string{
				cfg.Prefix, "ip", ip, strconv.FormatInt(window, 10),
			}, ":")

			ctx := c.Request().Context()
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}

			remaining := int64(cfg.Limit) - n
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(cfg.Limit) {
				resetIn := cfg.Window - time.Duration(now.UnixMilli()%cfg.Window.Milliseconds())*time.Millisecond
				secs := int(resetIn / time.Second)
				if secs < 1 {
					secs = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return c.String(http.StatusTooManyRequests, "Too many requests. Please slow down.")
			}
			return next(c)
		}
	}
}
