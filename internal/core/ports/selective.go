package ports

import (
	"context"

	"go.trai.ch/sift/internal/core/domain"
)

// SelectiveTestingService decides which test identifiers are verified as
// skippable. It owns the comparison semantics (hash equality, category
// scoping); callers treat its answer as authoritative. Fetch proves a cache
// entry exists, this service proves it applies; both are required before a
// target may be skipped.
//
//go:generate go run go.uber.org/mock/mockgen -source=selective.go -destination=mocks/mock_selective.go -package=mocks
type SelectiveTestingService interface {
	// CachedTests returns the verified-skippable subset of the graph's test
	// identifiers, given this run's hashes and the raw fetch result.
	CachedTests(
		ctx context.Context,
		scheme domain.Scheme,
		graph *domain.Graph,
		hashes map[domain.GraphTarget]string,
		fetched map[domain.CacheItem]string,
	) (map[domain.TestIdentifier]struct{}, error)
}
