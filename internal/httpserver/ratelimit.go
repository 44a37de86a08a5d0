package httpserver

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/ayursetu/ayur-hub/internal/config"
)

// clientLimiters hands out one token bucket per client IP. Idle buckets are
// evicted opportunistically so the map cannot grow without bound.
type clientLimiters struct {
	mu       sync.Mutex
	byIP     map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
	requests int64
}

const evictEvery = 1000

func newClientLimiters(rps, burst int) *clientLimiters {
	return &clientLimiters{
		byIP:  make(map[string]*rate.Limiter),
		rps:   rate.Limit(rps),
		burst: burst,
	}
}

func (c *clientLimiters) get(ip string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	lim, ok := c.byIP[ip]
	if !ok {
		lim = rate.NewLimiter(c.rps, c.burst)
		c.byIP[ip] = lim
	}

	c.requests++
	if c.requests%evictEvery == 0 {
		c.evictIdle()
	}

	return lim
}

// evictIdle drops limiters whose bucket is full again; a full bucket means
// the client has been quiet long enough to be indistinguishable from new.
func (c *clientLimiters) evictIdle() {
	for ip, lim := range c.byIP {
		if lim.Tokens() >= float64(c.burst) {
			delete(c.byIP, ip)
		}
	}
}

// RateLimitMiddleware enforces a per-IP token bucket. RateLimitRPS <= 0
// disables it entirely.
func RateLimitMiddleware(cfg *config.Config, next http.Handler) http.Handler {
	if cfg.RateLimitRPS <= 0 {
		return next
	}

	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = cfg.RateLimitRPS
	}

	limiters := newClientLimiters(cfg.RateLimitRPS, burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiters.get(clientIP(r)).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{
					"code":    "rate_limited",
					"message": "Too many requests",
				},
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first hop of X-Forwarded-For so limits apply to the
// real client behind a proxy, not the proxy itself.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
