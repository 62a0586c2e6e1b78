package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/adapters/logger"
	"go.trai.ch/gate/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the descriptor source Graft node.
	NodeID graft.ID = "adapter.descriptor_source"
	// LoaderNodeID exposes the same source through its loader port.
	LoaderNodeID graft.ID = "adapter.route_loader"
)

func init() {
	graft.Register(graft.Node[ports.DescriptorSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DescriptorSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(log), nil
		},
	})

	// The loader node hands out the same instance as the source node; the
	// two ports are different views of one Source.
	graft.Register(graft.Node[ports.RouteLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.RouteLoader, error) {
			source, err := graft.Dep[ports.DescriptorSource](ctx)
			if err != nil {
				return nil, err
			}
			return source.(*Source), nil
		},
	})
}
