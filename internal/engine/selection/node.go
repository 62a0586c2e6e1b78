package selection

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gate/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gate/internal/core/ports"
)

// NodeID is the unique identifier for the constraint cache Graft node.
const NodeID graft.ID = "engine.selection_cache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			source, err := graft.Dep[ports.DescriptorSource](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			providers := []ports.ConstraintProvider{
				NewDefaultProvider(),
			}

			return NewCache(source, providers, log), nil
		},
	})
}
