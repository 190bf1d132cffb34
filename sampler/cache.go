package sampler

import lru "github.com/hashicorp/golang-lru/v2"

// sampleKey identifies one (x, y, size) evaluation regardless of which
// State it was produced under. size is the sampled cell's own edge, not
// the State's pixel size, so States with different pixel sizes share the
// entry for a cell of the same size at the same center.
type sampleKey struct {
	X, Y, Size float64
}

// Cache memoizes Evaluator results across any number of Compute() calls,
// independent of the per-State node Store carried between them. A nil
// *Cache (or one built with a non-positive size) is always a miss and
// never allocates, so disabling the memo costs nothing.
type Cache[V comparable] struct {
	inner *lru.Cache[sampleKey, V]
}

// NewCache returns a Cache holding at most size entries, or a disabled
// Cache when size is not positive.
func NewCache[V comparable](size int) *Cache[V] {
	if size <= 0 {
		return &Cache[V]{}
	}
	// lru.New only rejects non-positive sizes, which were filtered above.
	inner, _ := lru.New[sampleKey, V](size)
	return &Cache[V]{inner: inner}
}

// Get looks up a previously memoized sample.
func (c *Cache[V]) Get(x, y, size float64) (V, bool) {
	if c == nil || c.inner == nil {
		var zero V
		return zero, false
	}
	return c.inner.Get(sampleKey{X: x, Y: y, Size: size})
}

// Put memoizes a sample for future Compute() calls.
func (c *Cache[V]) Put(x, y, size float64, v V) {
	if c == nil || c.inner == nil {
		return
	}
	c.inner.Add(sampleKey{X: x, Y: y, Size: size}, v)
}

// Evaluate returns f(x, y), serving it from cache when possible and
// counting a cache miss as one new evaluator call. Both sampler and
// refine route every evaluator invocation through this helper so that
// ComputeStats.NewCalls reflects actual evaluator work, not cache hits.
func Evaluate[V comparable](f func(x, y float64) V, cache *Cache[V], x, y, size float64, newCalls *int) V {
	if v, ok := cache.Get(x, y, size); ok {
		return v
	}
	v := f(x, y)
	*newCalls++
	cache.Put(x, y, size, v)
	return v
}
