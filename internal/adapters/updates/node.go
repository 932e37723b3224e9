package updates

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/cjtool/internal/adapters/github"
	"go.trai.ch/cjtool/internal/adapters/logger"
	"go.trai.ch/cjtool/internal/adapters/throttle"
	"go.trai.ch/cjtool/internal/core/ports"
)

// NodeID is the unique identifier for the update checker Graft node.
const NodeID graft.ID = "adapter.update_checker"

func init() {
	graft.Register(graft.Node[ports.UpdateChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{github.NodeID, throttle.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.UpdateChecker, error) {
			feed, err := graft.Dep[ports.ReleaseFeed](ctx)
			if err != nil {
				return nil, err
			}
			th, err := graft.Dep[ports.Throttle](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(feed, th, clockwork.NewRealClock(), log), nil
		},
	})
}
