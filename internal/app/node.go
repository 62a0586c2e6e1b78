package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gate/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gate/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/gate/internal/engine/selection"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App       *App
	Logger    ports.Logger
	Loader    ports.RouteLoader
	Source    ports.DescriptorSource
	Cache     *selection.Cache
	Telemetry ports.Telemetry
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.LoaderNodeID,
			selection.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.RouteLoader](ctx)
			if err != nil {
				return nil, err
			}

			source, err := graft.Dep[ports.DescriptorSource](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[*selection.Cache](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, source, cache, tel), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.RouteLoader](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.DescriptorSource](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*selection.Cache](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Loader:    loader,
		Source:    source,
		Cache:     cache,
		Telemetry: tel,
	}, nil
}
