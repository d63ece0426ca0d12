package cache_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigkit/pkg/cache"
)

func TestNew(t *testing.T) {
	t.Parallel()
	_, err := cache.New[string, int](0)
	assert.ErrorIs(t, err, cache.ErrInvalidCapacity)
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()
	c, err := cache.New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	_, _ = c.Get("a") // b is now the oldest
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())

	c.Put("a", 10)
	v, _ = c.Get("a")
	assert.Equal(t, 10, v, "put replaces in place")
	assert.Equal(t, 2, c.Len())

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))

	st := c.Stats()
	assert.Equal(t, uint64(1), st.Evictions)
	assert.Equal(t, uint64(1), st.Misses)
	assert.Equal(t, uint64(3), st.Hits)
}

func TestLRU_GetOrLoad(t *testing.T) {
	t.Parallel()

	t.Run("caches success", func(t *testing.T) {
		t.Parallel()
		c, _ := cache.New[string, string](4)
		calls := 0
		load := func() (string, error) { calls++; return "png", nil }

		for range 3 {
			v, err := c.GetOrLoad("k", load)
			require.NoError(t, err)
			assert.Equal(t, "png", v)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("does not cache errors", func(t *testing.T) {
		t.Parallel()
		c, _ := cache.New[string, string](4)
		boom := errors.New("boom")

		_, err := c.GetOrLoad("k", func() (string, error) { return "", boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, c.Len())

		v, err := c.GetOrLoad("k", func() (string, error) { return "ok", nil })
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})

	t.Run("concurrent callers share one load", func(t *testing.T) {
		t.Parallel()
		c, _ := cache.New[int, int](4)
		var calls atomic.Int32
		release := make(chan struct{})

		var wg sync.WaitGroup
		results := make([]int, 8)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := c.GetOrLoad(1, func() (int, error) {
					calls.Add(1)
					<-release
					return 42, nil
				})
				assert.NoError(t, err)
				results[i] = v
			}()
		}
		close(release)
		wg.Wait()

		assert.LessOrEqual(t, calls.Load(), int32(len(results)))
		for _, v := range results {
			assert.Equal(t, 42, v)
		}
		v, ok := c.Get(1)
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})
}
