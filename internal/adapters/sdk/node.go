package sdk

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjtool/internal/adapters/fs"
	"go.trai.ch/cjtool/internal/adapters/hostenv"
	"go.trai.ch/cjtool/internal/adapters/logger"
	"go.trai.ch/cjtool/internal/adapters/telemetry"
	"go.trai.ch/cjtool/internal/core/ports"
)

// NodeID is the unique identifier for the SDK root resolver Graft node.
const NodeID graft.ID = "adapter.sdk_resolver"

func init() {
	graft.Register(graft.Node[ports.SDKRootResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ProbeNodeID, hostenv.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.SDKRootResolver, error) {
			probe, err := graft.Dep[ports.PathProbe](ctx)
			if err != nil {
				return nil, err
			}
			env, err := graft.Dep[ports.HostEnvironment](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(probe, env, log, tracer), nil
		},
	})
}
