package middleware

import (
	"net/http"
	"sync"
	"time"

	"forro_orcamento/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// DefaultIdleTTL is how long a client's bucket is kept after its last request.
const DefaultIdleTTL = 10 * time.Minute

var errTooManyRequests = pkg.NewDomainErrorSimple("TOO_MANY_REQUESTS", "Too many requests, try again later", http.StatusTooManyRequests)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP. Buckets idle for
// longer than the TTL are dropped on the next sweep.
type IPRateLimiter struct {
	ips       map[string]*visitor
	mu        sync.Mutex
	r         rate.Limit
	b         int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*visitor),
		r:   r,
		b:   b,
		ttl: DefaultIdleTTL,
		now: time.Now,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= i.ttl {
		i.sweep(now)
	}

	v, exists := i.ips[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep must be called with mu held.
func (i *IPRateLimiter) sweep(now time.Time) {
	for ip, v := range i.ips {
		if now.Sub(v.lastSeen) >= i.ttl {
			delete(i.ips, ip)
		}
	}
	i.lastSweep = now
}

// Size reports how many client buckets are currently tracked.
func (i *IPRateLimiter) Size() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// Limit rejects requests over the client's budget with 429.
func (i *IPRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !i.getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}
