package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigkit/pkg/clientip"
	"github.com/dmitrymomot/sigkit/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, clock *fakeClock, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithClock(clock.Now),
	)
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{RefillRate: 1, RefillInterval: time.Second}},
		{"zero rate", ratelimiter.Config{Capacity: 1, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), tt.cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestBucket_Allow(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	b, _ := newBucket(t, clock, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second})
	ctx := context.Background()

	for i := range 3 {
		res, err := b.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, res.Allowed(), "request %d", i)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Second, res.RetryAfter(clock.Now()))

	other, err := b.Allow(ctx, "b")
	require.NoError(t, err)
	assert.True(t, other.Allowed(), "keys are independent")

	clock.Advance(time.Second)
	res, err = b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, res.Allowed(), "denied requests do not drain the refill")
	assert.Equal(t, 0, res.Remaining)

	clock.Advance(time.Hour)
	res, err = b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining, "refill is capped at capacity")

	_, err = b.AllowN(ctx, "a", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestMemoryStore_Sweep(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithStaleAfter(time.Minute),
		ratelimiter.WithClock(clock.Now),
	)
	defer store.Close()
	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)

	_, _ = b.Allow(context.Background(), "old")
	clock.Advance(2 * time.Minute)
	_, _ = b.Allow(context.Background(), "fresh")

	store.Sweep()
	assert.Equal(t, 1, store.Len())

	require.NoError(t, b.Reset(context.Background(), "fresh"))
	assert.Equal(t, 0, store.Len())
	store.Close()
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	b, _ := newBucket(t, clock, ratelimiter.Config{Capacity: 2, RefillRate: 2, RefillInterval: time.Minute})

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := clientip.Middleware(clientip.Resolver{})(ratelimiter.Middleware(b, ratelimiter.ByClientIP)(ok))

	call := func(addr string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/vcard.png", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	assert.Equal(t, http.StatusNoContent, call("192.0.2.1:1").Code)
	w := call("192.0.2.1:2")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = call("192.0.2.1:3")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusNoContent, call("192.0.2.2:1").Code, "other clients unaffected")
}

func TestMiddleware_DeniedHandlerAndEmptyKey(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	b, _ := newBucket(t, clock, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})

	denied := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	fixed := ratelimiter.Middleware(b, func(*http.Request) string { return "k" }, ratelimiter.WithDeniedHandler(denied))(ok)
	w := httptest.NewRecorder()
	fixed.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	w = httptest.NewRecorder()
	fixed.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)

	unkeyed := ratelimiter.Middleware(b, func(*http.Request) string { return "" })(ok)
	for range 3 {
		w = httptest.NewRecorder()
		unkeyed.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
