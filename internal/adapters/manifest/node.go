package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the graph mapper adapter Graft node.
const NodeID graft.ID = "adapter.graph_mapper"

func init() {
	graft.Register(graft.Node[ports.GraphMapper]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphMapper, error) {
			return NewLoader(), nil
		},
	})
}
