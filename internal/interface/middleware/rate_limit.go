package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/users-api/pkg/response"
)

// KeyFunc builds a rate-limit key from the request
type KeyFunc func(c *gin.Context) string

func clientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// KeyByIP limits by client IP only
func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return "rl:ip:" + clientIP(c)
	}
}

// KeyByIPAndPath limits by client IP and route template, so /users/1 and
// /users/2 share a bucket.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		return "rl:path:" + route + ":ip:" + clientIP(c)
	}
}

// INCR and set the window expiry on the first hit; returns {count, pttl}.
var windowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// Decision is the outcome of one Limiter.Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// Limiter is a fixed-window counter stored in Redis.
type Limiter struct {
	rdb    redis.Scripter
	max    int
	window time.Duration
}

func NewLimiter(rdb redis.Scripter, max int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, max: max, window: window}
}

// Allow counts one hit against key.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	res, err := windowScript.Run(ctx, l.rdb, []string{key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if len(res) != 2 {
		return Decision{}, fmt.Errorf("rate limit %s: unexpected reply %v", key, res)
	}
	count, pttl := int(res[0]), res[1]

	d := Decision{Allowed: count <= l.max, Limit: l.max, Remaining: l.max - count}
	if d.Remaining < 0 {
		d.Remaining = 0
	}
	if pttl > 0 {
		d.ResetIn = time.Duration(pttl) * time.Millisecond
	}
	return d, nil
}

// RateLimit rejects requests over max per window with 429. It is a no-op when
// rdb is nil and lets requests through when Redis errors.
func RateLimit(rdb *redis.Client, max int, window time.Duration, keyFn KeyFunc) gin.HandlerFunc {
	if rdb == nil || max <= 0 || window <= 0 || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return limit(NewLimiter(rdb, max, window), keyFn)
}

func limit(l *Limiter, keyFn KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		d, err := l.Allow(c.Request.Context(), keyFn(c))
		if err != nil {
			_ = c.Error(err)
			c.Next()
			return
		}

		resetSec := int((d.ResetIn + time.Second - 1) / time.Second)
		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if !d.Allowed {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			response.Error(c, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		c.Next()
	}
}
