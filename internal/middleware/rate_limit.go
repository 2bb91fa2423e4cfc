package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/response"
)

// Limiter counts hits for a key inside a fixed window.
type Limiter interface {
	// Allow records a hit and reports whether the key is still within its limit.
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed-window counter backed by INCR + EXPIRE.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisLimiter returns nil when client is nil so RateLimit becomes a pass-through.
func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) Limiter {
	if client == nil || limit <= 0 {
		return nil
	}
	return &RedisLimiter{client: client, prefix: prefix, limit: int64(limit), window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := "ratelimit:" + l.prefix + ":" + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= l.limit, nil
}

// RateLimit rejects clients over the limiter's budget with 429.
// Limiter failures let the request through.
func RateLimit(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logger.FromContext(r.Context()).Warn().Err(err).Str("ip", ip).Msg("Rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				response.TooManyRequests(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
