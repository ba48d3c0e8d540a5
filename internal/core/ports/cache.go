package ports

import (
	"context"

	"go.trai.ch/sift/internal/core/domain"
)

// CacheStore is the cache backend behind the fetch/store contract. It may be
// local, remote, or a combination; fetch and store may parallelize
// internally. Retry and backoff belong to implementations, not callers.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheStore interface {
	// Fetch looks the given keys up in the category and returns found items
	// mapped to their storage location. Provenance on returned items is
	// always local or remote, never miss.
	Fetch(ctx context.Context, keys []domain.CacheKey, category domain.CacheCategory) (map[domain.CacheItem]string, error)

	// Store persists the given items in the category.
	Store(ctx context.Context, items []domain.CacheStorableItem, category domain.CacheCategory) error
}
