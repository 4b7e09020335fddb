package cache

import (
	"context"
	"time"
)

// CosmeticCache remembers catalog answers (display name -> cosmetic id).
// Only public catalog data goes in here; credentials never do.
type CosmeticCache interface {
	// Get returns the cached id for name. Returns ErrCacheMiss if not found.
	Get(ctx context.Context, name string) (string, error)

	// Set stores the id for name with the given TTL.
	Set(ctx context.Context, name, id string, ttl time.Duration) error

	// Close releases resources held by the cache.
	Close() error
}

// Common cache errors
type CacheError string

func (e CacheError) Error() string { return string(e) }

const (
	// ErrCacheMiss indicates the key was not found in cache.
	ErrCacheMiss CacheError = "cache miss"
)
