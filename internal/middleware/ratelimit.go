package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/bondcalc/internal/domain/dto"
)

// client is one IP's token bucket and the last time it was used.
type client struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

// limiter keeps a token bucket per client IP: burst of limit, refilled at
// limit tokens per window. A client idle for a full window has a full bucket
// again, so its entry can be dropped without changing any decision.
// NOTE: state is per process; multi-instance deployments need a shared store.
type limiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     int
	window    time.Duration
	every     rate.Limit
	lastSweep time.Time
	now       func() time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	if limit < 1 {
		limit = 1
	}
	return &limiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
		every:   rate.Every(window / time.Duration(limit)),
		now:     time.Now,
	}
}

// allow takes one token for ip. When the bucket is empty it returns false and
// how long until the next token.
func (l *limiter) allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(now)
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &client{bucket: rate.NewLimiter(l.every, l.limit)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now

	if cl.bucket.AllowN(now, 1) {
		return true, 0
	}
	r := cl.bucket.ReserveN(now, 1)
	wait := r.DelayFrom(now)
	r.CancelAt(now)
	return false, wait
}

// sweep drops clients idle for longer than a window. It runs at most once
// per window, so its cost is spread over all requests in that window.
func (l *limiter) sweep(now time.Time) {
	for k, cl := range l.clients {
		if now.Sub(cl.lastSeen) > l.window {
			delete(l.clients, k)
		}
	}
	l.lastSweep = now
}

// RateLimiter limits each client IP to limit requests per window, with
// bursts of up to limit requests.
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	Retry-After: <seconds until the next token>
//	{"message": "rate limit exceeded", "timestamp": "..."}
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter(limit, window)
	return func(c *gin.Context) {
		if ok, wait := l.allow(c.ClientIP()); !ok {
			c.Header("Retry-After", retryAfter(wait))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}

func retryAfter(wait time.Duration) string {
	secs := int(math.Ceil(wait.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
