package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/adapters/telemetry/progrock"
	"go.trai.ch/sift/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			if os.Getenv("SIFT_PROGRESS") != "" {
				return progrock.New(), nil
			}
			return NewNoOpTracer(), nil
		},
	})
}
