package selective

import (
	"context"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

// Classifier decides, per resolved target, whether a previous passing run
// already covers it. A target counts as a hit only when the backend fetch
// found its entry and the selective testing service verified it as
// applicable; either signal alone is not enough.
type Classifier struct {
	hasher  ports.TargetHasher
	cache   ports.CacheStore
	service ports.SelectiveTestingService
}

// NewClassifier creates a new Classifier.
func NewClassifier(
	hasher ports.TargetHasher,
	cache ports.CacheStore,
	service ports.SelectiveTestingService,
) *Classifier {
	return &Classifier{
		hasher:  hasher,
		cache:   cache,
		service: service,
	}
}

// Classification is the outcome of classifying one run's resolved targets.
type Classification struct {
	// Hashes maps every graph target to its content hash.
	Hashes map[domain.GraphTarget]string
	// Fetched is the raw backend fetch result, item to storage location.
	Fetched map[domain.CacheItem]string
	// Hits maps each resolved target classified as a hit to its cache item
	// with the backend-reported provenance. Targets that are absent remain
	// pending until after execution. Keying by GraphTarget keeps same-named
	// targets in different projects classified independently.
	Hits map[domain.GraphTarget]domain.CacheItem
	// Skippable lists identifiers whose resolved targets are all hits, in
	// resolver declaration order. A skip token addresses targets by name in
	// the underlying tool, so a name shared with a non-hit target must not
	// be skipped.
	Skippable []domain.TestIdentifier
}

// Classify hashes the whole graph, fetches cache entries for the resolved
// targets, and intersects the fetch result with the service's verified set.
// Classification only proceeds once the complete hash mapping and fetch
// result are available.
func (c *Classifier) Classify(
	ctx context.Context,
	graph *domain.Graph,
	scheme domain.Scheme,
	targets []domain.GraphTarget,
	additional []string,
) (*Classification, error) {
	hashes, err := c.hasher.HashGraph(ctx, graph, additional)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to hash graph")
	}

	keys := make([]domain.CacheKey, 0, len(targets))
	for _, gt := range targets {
		hash, ok := hashes[gt]
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrMissingTargetHash, ""), "project_path", gt.ProjectPath)
			return nil, zerr.With(err, "target", gt.TargetName)
		}
		keys = append(keys, domain.CacheKey{Name: gt.TestIdentifier().String(), Hash: hash})
	}

	fetched, err := c.cache.Fetch(ctx, keys, domain.CategorySelectiveTests)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch cache entries")
	}

	verified, err := c.service.CachedTests(ctx, scheme, graph, hashes, fetched)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine cached tests")
	}

	fetchedByKey := make(map[domain.CacheKey]domain.CacheItem, len(fetched))
	for item := range fetched {
		fetchedByKey[item.Key()] = item
	}

	cls := &Classification{
		Hashes:  hashes,
		Fetched: fetched,
		Hits:    make(map[domain.GraphTarget]domain.CacheItem),
	}
	for _, gt := range targets {
		id := gt.TestIdentifier()
		item, found := fetchedByKey[domain.CacheKey{Name: id.String(), Hash: hashes[gt]}]
		if !found {
			continue
		}
		if _, ok := verified[id]; !ok {
			continue
		}
		cls.Hits[gt] = item
	}

	total := make(map[domain.TestIdentifier]int, len(targets))
	hits := make(map[domain.TestIdentifier]int, len(targets))
	for _, gt := range targets {
		id := gt.TestIdentifier()
		total[id]++
		if _, ok := cls.Hits[gt]; ok {
			hits[id]++
		}
	}
	seen := make(map[domain.TestIdentifier]bool, len(total))
	for _, gt := range targets {
		id := gt.TestIdentifier()
		if seen[id] {
			continue
		}
		seen[id] = true
		if hits[id] == total[id] {
			cls.Skippable = append(cls.Skippable, id)
		}
	}
	return cls, nil
}
