package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache wraps a CacheManager with a compute function that fills
// misses. With bypass set every Get recomputes, which turns the cache off
// without changing call sites.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache  CacheManager[K, V]
	fn     func(ctx context.Context, input I) (V, error)
	bypass bool
}

// NewReadThroughCache creates a read-through wrapper over cache using fn to
// compute missing values.
func NewReadThroughCache[K comparable, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	bypass bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{cache: cache, fn: fn, bypass: bypass}
}

// Get returns the cached value for key, computing and storing it on a miss.
// Compute errors are returned without touching the cache.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.bypass {
		return r.fn(ctx, input)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.fn(ctx, input)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)
	return value, nil
}
