package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"epic-relay-api/internal/cache"
	"epic-relay-api/internal/metrics"
	"epic-relay-api/internal/repository"
)

// literalIDPrefixes mark input that is already a catalog identifier.
var literalIDPrefixes = []string{"cid_", "character_"}

// IsCosmeticID reports whether s already looks like a catalog identifier.
func IsCosmeticID(s string) bool {
	lower := strings.ToLower(s)
	for _, prefix := range literalIDPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// CosmeticResolver maps skin names to catalog identifiers.
type CosmeticResolver struct {
	catalog  repository.CatalogRepository
	cache    cache.CosmeticCache
	cacheTTL time.Duration
}

// NewCosmeticResolver creates a resolver without a lookup cache.
func NewCosmeticResolver(catalog repository.CatalogRepository) *CosmeticResolver {
	return &CosmeticResolver{catalog: catalog}
}

// NewCosmeticResolverWithCache creates a resolver that remembers catalog answers for ttl.
func NewCosmeticResolverWithCache(catalog repository.CatalogRepository, c cache.CosmeticCache, ttl time.Duration) *CosmeticResolver {
	return &CosmeticResolver{
		catalog:  catalog,
		cache:    c,
		cacheTTL: ttl,
	}
}

// Resolve returns the catalog identifier for nameOrID.
//
// Literal identifiers are returned unchanged without a catalog call. When the
// catalog has no match, Resolve returns nameOrID together with
// ErrCosmeticNotFound so the caller can decide whether to go on with it.
// Catalog failures are returned as-is and never reported as not found.
func (r *CosmeticResolver) Resolve(ctx context.Context, nameOrID string) (string, error) {
	if IsCosmeticID(nameOrID) {
		metrics.CosmeticLookups.WithLabelValues("literal").Inc()
		return nameOrID, nil
	}

	if id, ok := r.cached(ctx, nameOrID); ok {
		metrics.CosmeticLookups.WithLabelValues("cached").Inc()
		return id, nil
	}

	cosmetic, err := r.catalog.SearchCosmeticByName(ctx, nameOrID)
	if err != nil {
		metrics.CosmeticLookups.WithLabelValues("error").Inc()
		return "", err
	}
	if cosmetic == nil {
		metrics.CosmeticLookups.WithLabelValues("not_found").Inc()
		return nameOrID, ErrCosmeticNotFound
	}

	metrics.CosmeticLookups.WithLabelValues("catalog").Inc()
	r.remember(ctx, nameOrID, cosmetic.ID)
	return cosmetic.ID, nil
}

func (r *CosmeticResolver) cached(ctx context.Context, name string) (string, bool) {
	if r.cache == nil {
		return "", false
	}
	id, err := r.cache.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("[CosmeticResolver] Cache read failed for %q: %v", name, err)
		}
		return "", false
	}
	return id, true
}

func (r *CosmeticResolver) remember(ctx context.Context, name, id string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, name, id, r.cacheTTL); err != nil {
		log.Printf("[CosmeticResolver] Cache write failed for %q: %v", name, err)
	}
}
