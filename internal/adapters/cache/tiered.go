package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.CacheStore = (*TieredStore)(nil)

const memoSize = 4096

// TieredStore combines a local and an optional remote cache store. Fetches
// consult both tiers concurrently and prefer the local answer when a key is
// in both; stores write through to every tier. A cache entry is immutable
// for a given (category, name, hash), so positive fetch results are memoized
// for the process lifetime.
type TieredStore struct {
	local  ports.CacheStore
	remote ports.CacheStore
	memo   *lru.Cache[string, memoEntry]
}

type memoEntry struct {
	item     domain.CacheItem
	location string
}

// NewTieredStore creates a tiered store. The remote tier may be nil.
func NewTieredStore(local, remote ports.CacheStore) (*TieredStore, error) {
	memo, err := lru.New[string, memoEntry](memoSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create cache memo")
	}
	return &TieredStore{
		local:  local,
		remote: remote,
		memo:   memo,
	}, nil
}

// Fetch looks the keys up in both tiers. Results only surface once every
// tier has answered; a fetch failure in either tier fails the whole call.
func (s *TieredStore) Fetch(ctx context.Context, keys []domain.CacheKey, category domain.CacheCategory) (map[domain.CacheItem]string, error) {
	out := make(map[domain.CacheItem]string)

	pending := make([]domain.CacheKey, 0, len(keys))
	for _, key := range keys {
		if entry, ok := s.memo.Get(entryKey(category, key)); ok {
			out[entry.item] = entry.location
			continue
		}
		pending = append(pending, key)
	}
	if len(pending) == 0 {
		return out, nil
	}

	var localFound, remoteFound map[domain.CacheItem]string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.local.Fetch(gctx, pending, category)
		if err != nil {
			return zerr.Wrap(err, "local cache fetch failed")
		}
		localFound = found
		return nil
	})
	if s.remote != nil {
		g.Go(func() error {
			found, err := s.remote.Fetch(gctx, pending, category)
			if err != nil {
				return zerr.Wrap(err, "remote cache fetch failed")
			}
			remoteFound = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Local wins when both tiers hold the key.
	merged := make(map[domain.CacheKey]memoEntry)
	for item, location := range remoteFound {
		merged[item.Key()] = memoEntry{item: item, location: location}
	}
	for item, location := range localFound {
		merged[item.Key()] = memoEntry{item: item, location: location}
	}

	for key, entry := range merged {
		s.memo.Add(entryKey(category, key), entry)
		out[entry.item] = entry.location
	}
	return out, nil
}

// Store writes the items through to every tier.
func (s *TieredStore) Store(ctx context.Context, items []domain.CacheStorableItem, category domain.CacheCategory) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.local.Store(gctx, items, category); err != nil {
			return zerr.Wrap(err, "local cache store failed")
		}
		return nil
	})
	if s.remote != nil {
		g.Go(func() error {
			if err := s.remote.Store(gctx, items, category); err != nil {
				return zerr.Wrap(err, "remote cache store failed")
			}
			return nil
		})
	}
	return g.Wait()
}
