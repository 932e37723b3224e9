package throttle

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/cjtool/internal/core/ports"
)

// NodeID is the unique identifier for the update check throttle Graft node.
const NodeID graft.ID = "adapter.throttle"

func init() {
	graft.Register(graft.Node[ports.Throttle]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Throttle, error) {
			return New(clockwork.NewRealClock(), DefaultInterval), nil
		},
	})
}
