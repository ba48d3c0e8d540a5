// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/sift/internal/core/domain"
)

// GraphMapper loads the workspace description and maps it to a graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_mapper.go -destination=mocks/mock_graph_mapper.go -package=mocks
type GraphMapper interface {
	// Map reads the workspace rooted at the given path and returns its graph.
	// It fails with a mapping error on malformed project descriptions.
	Map(ctx context.Context, path string) (*domain.Graph, error)
}
