package selective

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/adapters/cache"                  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sift/internal/adapters/hash"                   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sift/internal/adapters/logger"                 //nolint:depguard // Wired in engine wiring
	selectivesvc "go.trai.ch/sift/internal/adapters/selective" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sift/internal/adapters/telemetry"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sift/internal/adapters/xcodebuild"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			hash.NodeID,
			cache.NodeID,
			selectivesvc.NodeID,
			xcodebuild.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			hasher, err := graft.Dep[ports.TargetHasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			service, err := graft.Dep[ports.SelectiveTestingService](ctx)
			if err != nil {
				return nil, err
			}

			invoker, err := graft.Dep[ports.BuildToolInvoker](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewDispatcher(
				NewClassifier(hasher, store, service),
				store,
				invoker,
				log,
				tracer,
			), nil
		},
	})
}
