package status

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjtool/internal/adapters/logger"
	"go.trai.ch/cjtool/internal/core/ports"
)

// NodeID is the unique identifier for the status reporter Graft node.
const NodeID graft.ID = "adapter.status_reporter"

func init() {
	graft.Register(graft.Node[ports.StatusReporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.StatusReporter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReporter(log), nil
		},
	})
}
