package hostenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjtool/internal/core/ports"
)

// NodeID is the unique identifier for the host environment Graft node.
const NodeID graft.ID = "adapter.hostenv"

func init() {
	graft.Register(graft.Node[ports.HostEnvironment]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostEnvironment, error) {
			return New(), nil
		},
	})
}
