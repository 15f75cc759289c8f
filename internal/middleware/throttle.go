package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"todo-web/internal/model"
)

const (
	DefaultRateLimitPerMin = 30
	MsgTooManyAttempts     = "Too many attempts. Please wait a moment and try again."
)

// LoginThrottle limits credential submissions per client IP. A rejected
// submission goes back to the form with a notification and never reaches
// the backend.
func (m Middleware) LoginThrottle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.throttle.Allow(c.ClientIP()); err != nil {
			ctx := c.Request.Context()
			m.l.Warnf(ctx, "middleware.LoginThrottle: %v", err)
			if sc, ok := model.GetScopeFromContext(ctx); ok {
				m.notifier.Failure(ctx, sc, MsgTooManyAttempts)
			}
			c.Redirect(http.StatusSeeOther, c.Request.URL.Path)
			c.Abort()
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key and forgets idle keys.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = DefaultRateLimitPerMin
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
