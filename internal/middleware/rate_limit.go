package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter menyimpan satu token bucket per key (IP atau user).
// Entry yang lama tidak dipakai dibuang saat sweep.
type KeyedRateLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	r         rate.Limit // request per detik
	b         int        // burst
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		entries:   make(map[string]*limiterEntry),
		r:         r,
		b:         b,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (k *KeyedRateLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) > limiterIdleTTL {
		for id, e := range k.entries {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(k.entries, id)
			}
		}
		k.lastSweep = now
	}

	e, ok := k.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Len dipakai untuk observasi dan test.
func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func rateLimit(limiter *KeyedRateLimiter, key func(c *gin.Context) string, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		if k == "" {
			c.Next()
			return
		}
		if !limiter.Allow(k) {
			response.Error(c, http.StatusTooManyRequests, apperror.CodeTooManyRequests, message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	return rateLimit(NewKeyedRateLimiter(r, b), func(c *gin.Context) string {
		return c.ClientIP()
	}, "Too many requests from this IP")
}

// RateLimitByUser: r = request per detik, b = burst. Request tanpa user
// (belum lewat AuthMiddleware) tidak dibatasi di sini.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	return rateLimit(NewKeyedRateLimiter(r, b), func(c *gin.Context) string {
		return c.GetString("user_id")
	}, "Too many requests from this user")
}
