package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/instant/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/instant/internal/adapters/host"               //nolint:depguard // Wired in app layer
	"go.trai.ch/instant/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/instant/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/instant/internal/engine/snapshot"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.OptionsNodeID,
			config.BuildNodeID,
			host.NodeID,
			snapshot.NodeID,
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
	options, err := graft.Dep[ports.OptionsLoader](ctx)
	if err != nil {
		return nil, err
	}

	builds, err := graft.Dep[ports.BuildLoader](ctx)
	if err != nil {
		return nil, err
	}

	hosts, err := graft.Dep[ports.HostFactory](ctx)
	if err != nil {
		return nil, err
	}

	engines, err := graft.Dep[*snapshot.Factory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(options, builds, hosts, engines, log), nil
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
