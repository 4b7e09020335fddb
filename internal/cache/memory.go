package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// cacheEntry represents a cached id with expiration.
type cacheEntry struct {
	id        string
	expiresAt time.Time
}

// isExpired checks if the entry has expired.
func (e *cacheEntry) isExpired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// MemoryCache is an in-memory implementation of CosmeticCache for single-instance deployments.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	now     func() time.Time

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	stopOnce        sync.Once
}

// NewMemoryCache creates a new in-memory cache with automatic cleanup.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		entries:         make(map[string]*cacheEntry),
		now:             time.Now,
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	go c.cleanup()

	return c
}

// Get returns the cached id for name.
func (c *MemoryCache) Get(ctx context.Context, name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[normalize(name)]
	if !exists || entry.isExpired(c.now()) {
		return "", ErrCacheMiss
	}
	return entry.id, nil
}

// Set stores the id for name with the given TTL.
func (c *MemoryCache) Set(ctx context.Context, name, id string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[normalize(name)] = &cacheEntry{
		id:        id,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

// Len returns the number of entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the background cleanup goroutine.
func (c *MemoryCache) Close() error {
	c.stopOnce.Do(func() {
		close(c.stopCleanup)
	})
	return nil
}

// cleanup periodically removes expired entries.
func (c *MemoryCache) cleanup() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCleanup:
			return
		}
	}
}

// removeExpired removes all expired entries.
func (c *MemoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if entry.isExpired(now) {
			delete(c.entries, key)
		}
	}
}

// normalize makes lookups case-insensitive, matching the catalog's name search.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
