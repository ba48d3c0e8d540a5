package selective

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the selective testing service Graft node.
const NodeID graft.ID = "adapter.selective_testing"

func init() {
	graft.Register(graft.Node[ports.SelectiveTestingService]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SelectiveTestingService, error) {
			return NewService(), nil
		},
	})
}
