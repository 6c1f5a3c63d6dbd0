package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/filebrowser/api/src/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	msgRateLimited = "Too many requests. Please try again later."

	// idleClientTTL is how long an inactive client keeps its bucket
	idleClientTTL = 10 * time.Minute
	sweepInterval = 2 * time.Minute
	retryAfter    = time.Minute
)

// RateLimiter keeps one token bucket per client IP. It is the only shared
// mutable state of the server.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter builds a limiter allowing rate_limit.per_min requests per
// minute and client, with bursts of the same size. Zero disables limiting.
// Idle clients are swept until ctx ends.
func NewRateLimiter(ctx context.Context, cfg *config.Config) *RateLimiter {
	perMin := cfg.RateLimit.PerMin

	rl := &RateLimiter{
		clients: make(map[string]*clientBucket),
		limit:   rate.Every(time.Minute / time.Duration(max(perMin, 1))),
		burst:   perMin,
		now:     time.Now,
	}

	if rl.Enabled() {
		go rl.sweepLoop(ctx)
	}

	return rl
}

// Enabled reports whether requests are limited at all
func (rl *RateLimiter) Enabled() bool {
	return rl.burst > 0
}

// getLimiter returns the bucket of ip, creating it on first sight
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, ok := rl.clients[ip]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = bucket
	}
	bucket.lastSeen = rl.now()
	return bucket.limiter
}

func (rl *RateLimiter) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

// cleanup drops clients idle for longer than idleClientTTL
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-idleClientTTL)
	for ip, bucket := range rl.clients {
		if bucket.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Middleware rejects over-limit clients with 429 and a plain-text body
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.Enabled() && !rl.getLimiter(c.ClientIP()).Allow() {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			c.String(http.StatusTooManyRequests, msgRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
