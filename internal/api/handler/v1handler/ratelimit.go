package v1handler

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/lufutu/scrumsan-sub003/pkg/controller"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
)

// RateLimiter throttles requests per client IP using a token bucket per
// client. Buckets idle for longer than the eviction window are dropped.
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	window time.Duration

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter builds a limiter allowing requestsPerMinute sustained
// requests per client. A non-positive rate disables limiting and returns nil.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	if requestsPerMinute <= 0 {
		return nil
	}

	burst := requestsPerMinute / 10
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		limit:   rate.Limit(float64(requestsPerMinute) / 60),
		burst:   burst,
		window:  5 * time.Minute,
		clients: make(map[string]*clientLimiter),
	}
}

// Middleware enforces the limit. A nil receiver is a no-op so callers can
// wire the limiter unconditionally.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if !rl.allow(controller.GetClientIP(c.Request)) {
			writeError(c, serrors.With(serrors.ErrRateLimited, "too many requests"))

			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.cleanupLocked(now)

	client, ok := rl.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.Allow()
}

func (rl *RateLimiter) cleanupLocked(now time.Time) {
	for ip, client := range rl.clients {
		if now.Sub(client.lastSeen) > rl.window {
			delete(rl.clients, ip)
		}
	}
}
