package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/instant/internal/build"
	"go.trai.ch/instant/internal/core/ports"
)

const (
	// OptionsNodeID resolves the engine options loader.
	OptionsNodeID graft.ID = "adapter.options_loader"
	// BuildNodeID resolves the build definition loader.
	BuildNodeID graft.ID = "adapter.build_loader"
)

func init() {
	graft.Register(graft.Node[ports.OptionsLoader]{
		ID:        OptionsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OptionsLoader, error) {
			return NewOptionsLoader(build.Version), nil
		},
	})

	graft.Register(graft.Node[ports.BuildLoader]{
		ID:        BuildNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildLoader, error) {
			return NewBuildLoader(), nil
		},
	})
}
