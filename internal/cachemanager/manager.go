// Package cachemanager provides TTL caches for memoising expensive lookups.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a TTL key/value cache.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
