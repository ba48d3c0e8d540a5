package hash

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the target hasher adapter Graft node.
const NodeID graft.ID = "adapter.target_hasher"

func init() {
	graft.Register(graft.Node[ports.TargetHasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TargetHasher, error) {
			return NewHasher("."), nil
		},
	})
}
