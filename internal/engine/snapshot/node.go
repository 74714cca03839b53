package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/instant/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/instant/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/instant/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/instant/internal/engine/codec"
)

// NodeID is the unique identifier for the snapshot engine factory Graft node.
const NodeID graft.ID = "engine.snapshot"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			store, err := graft.Dep[ports.EntryStore](ctx)
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

			return NewFactory(store, codec.Default(), log, telemetry), nil
		},
	})
}
