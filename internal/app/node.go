package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetsync/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/assetsync/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/assetsync/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/assetsync/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/assetsync/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/assetsync/internal/engine/synchronizer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			synchronizer.NodeID,
			cas.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.PipelineLoader](ctx)
	if err != nil {
		return nil, err
	}

	syncer, err := graft.Dep[*synchronizer.Synchronizer](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.BuildInfoStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, syncer, stores, watchers, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
