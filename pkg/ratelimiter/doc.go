// Package ratelimiter is a token bucket limiter for HTTP handlers.
//
// Each key owns a bucket holding up to Capacity tokens. Every request takes
// one; RefillRate tokens come back every RefillInterval. Requests that find
// the bucket empty are denied without spending anything.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       30,
//		RefillRate:     30,
//		RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByClientIP)).Get("/vcard.png", h)
//
// Config carries env tags (RATE_LIMIT_*) so it can be loaded with pkg/config.
package ratelimiter
