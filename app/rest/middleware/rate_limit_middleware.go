package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter applies per-client-IP token buckets. Credential
// endpoints get a tighter budget than the rest of the API.
type RateLimiter struct {
	visitors map[string]*visitor
	mutex    sync.RWMutex

	defaultLimit rate.Limit
	defaultBurst int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with the given default budget.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors:     make(map[string]*visitor),
		defaultLimit: rate.Limit(rps),
		defaultBurst: burst,
	}

	go rl.cleanupVisitors()
	return rl
}

// RateLimit returns the limiting middleware.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			var limit rate.Limit
			var burst int

			path := c.Request().URL.Path
			switch {
			case strings.Contains(path, "/sessions"), strings.Contains(path, "/identities"):
				// Anything that grinds bcrypt gets the tight budget.
				limit = rate.Every(time.Second)
				burst = 5
			case strings.Contains(path, "/reset"):
				limit = rate.Every(10 * time.Second)
				burst = 3
			default:
				limit = rl.defaultLimit
				burst = rl.defaultBurst
			}

			if !rl.allow(ip, path, limit, burst) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error": "Rate limit exceeded",
					"code":  "RATE_LIMIT_EXCEEDED",
				})
			}

			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(ip, path string, limit rate.Limit, burst int) bool {
	// Buckets are keyed per budget class so a burst of health checks
	// cannot drain the login budget.
	key := ip
	if burst != rl.defaultBurst {
		key = ip + "|" + path
	}

	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		rl.visitors[key] = &visitor{
			limiter:  rate.NewLimiter(limit, burst),
			lastSeen: time.Now(),
		}
		return true
	}

	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}
