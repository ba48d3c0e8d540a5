package ports

import (
	"context"

	"go.trai.ch/sift/internal/core/domain"
)

// TargetHasher computes stable content hashes for every target in a graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type TargetHasher interface {
	// HashGraph returns a content hash per graph target. The additional
	// strings are opaque cache-busting seeds (e.g. environment fingerprints)
	// folded into every hash. The mapping must cover every target reachable
	// from resolved candidates.
	HashGraph(ctx context.Context, graph *domain.Graph, additional []string) (map[domain.GraphTarget]string, error)
}
