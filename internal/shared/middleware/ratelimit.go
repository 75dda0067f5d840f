package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces a per-IP fixed-window request budget. Counters live in
// Redis so the budget holds across replicas; when Redis is unreachable the
// limiter falls back to an in-process window rather than rejecting traffic.
type RateLimiter struct {
	client    *redis.Client
	perMinute int

	mu     sync.Mutex
	local  map[string]*window
	prefix string
}

type window struct {
	count int
	reset time.Time
}

func NewRateLimiter(client *redis.Client, perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 120
	}
	return &RateLimiter{
		client:    client,
		perMinute: perMinute,
		local:     make(map[string]*window),
		prefix:    "ratelimit:",
	}
}

// Handler returns the gin middleware enforcing the limit.
func (l *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.allow(c, ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests. Please slow down.",
			})
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) allow(c *gin.Context, ip string) bool {
	if l.client != nil {
		if ok, err := l.allowRedis(c, ip); err == nil {
			return ok
		}
	}
	return l.allowLocal(ip)
}

func (l *RateLimiter) allowRedis(c *gin.Context, ip string) (bool, error) {
	key := fmt.Sprintf("%s%s:%s", l.prefix, ip, time.Now().Format("200601021504"))
	ctx := c.Request.Context()

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		l.client.Expire(ctx, key, time.Minute)
	}
	return count <= int64(l.perMinute), nil
}

func (l *RateLimiter) allowLocal(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	// Drop expired windows so the map does not accumulate one entry per
	// client IP ever seen.
	for key, w := range l.local {
		if now.After(w.reset) {
			delete(l.local, key)
		}
	}

	w, ok := l.local[ip]
	if !ok {
		l.local[ip] = &window{count: 1, reset: now.Add(time.Minute)}
		return true
	}
	w.count++
	return w.count <= l.perMinute
}
