package ratelimiter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/sigkit/pkg/clientip"
	"github.com/dmitrymomot/sigkit/pkg/logger"
)

// KeyFunc picks the bucket for a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// ByClientIP keys buckets by the address clientip.Middleware stored, or the
// TCP peer when that middleware did not run.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.Resolver{}.Resolve(r)
}

type middlewareConfig struct {
	log    *slog.Logger
	denied http.Handler
	now    func() time.Time
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithLogger logs store failures.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithDeniedHandler answers requests over the limit. Rate limit headers are
// already set when it runs.
func WithDeniedHandler(h http.Handler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.denied = h
		}
	}
}

// Middleware limits requests per key and sets X-RateLimit-* headers. Store
// failures let the request through.
func Middleware(b *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		log: logger.Discard(),
		denied: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), k)
			if err != nil {
				cfg.log.ErrorContext(r.Context(), "rate limit check failed", logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				retry := int(res.RetryAfter(cfg.now()).Round(time.Second).Seconds())
				h.Set("Retry-After", strconv.Itoa(max(1, retry)))
				cfg.denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
