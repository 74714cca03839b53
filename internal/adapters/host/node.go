package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/instant/internal/core/ports"
)

// NodeID is the unique identifier for the host factory Graft node.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.HostFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostFactory, error) {
			return NewFactory(), nil
		},
	})
}
