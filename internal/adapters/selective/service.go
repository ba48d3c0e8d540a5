// Package selective provides the default selective testing service.
package selective

import (
	"context"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
)

var _ ports.SelectiveTestingService = (*Service)(nil)

// Service implements the default verification policy: a test identifier is
// verified when a fetched cache entry carries exactly the hash computed for
// a target of that name in this run. The policy lives behind the port so it
// can evolve (partial hash matches, category-aware overrides) without
// touching the dispatch flow.
type Service struct{}

// NewService creates a new Service.
func NewService() *Service {
	return &Service{}
}

// CachedTests returns the verified-skippable subset of test identifiers.
func (s *Service) CachedTests(
	_ context.Context,
	_ domain.Scheme,
	_ *domain.Graph,
	hashes map[domain.GraphTarget]string,
	fetched map[domain.CacheItem]string,
) (map[domain.TestIdentifier]struct{}, error) {
	current := make(map[domain.CacheKey]bool, len(hashes))
	for gt, hash := range hashes {
		current[domain.CacheKey{Name: gt.TestIdentifier().String(), Hash: hash}] = true
	}

	verified := make(map[domain.TestIdentifier]struct{})
	for item := range fetched {
		if item.Category != domain.CategorySelectiveTests {
			continue
		}
		if current[item.Key()] {
			verified[domain.TestIdentifier(item.Name)] = struct{}{}
		}
	}
	return verified, nil
}
