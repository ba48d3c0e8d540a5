package xcodebuild

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the build tool invoker Graft node.
const NodeID graft.ID = "adapter.build_tool_invoker"

func init() {
	graft.Register(graft.Node[ports.BuildToolInvoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildToolInvoker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInvoker(os.Getenv("SIFT_TOOL"), log), nil
		},
	})
}
