package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/instant/internal/core/ports"
)

// NodeID is the unique identifier for the entry store Graft node.
const NodeID graft.ID = "adapter.entry_store"

func init() {
	graft.Register(graft.Node[ports.EntryStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EntryStore, error) {
			return NewStore(), nil
		},
	})
}
