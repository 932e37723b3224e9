package github

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjtool/internal/adapters/hostenv"
	"go.trai.ch/cjtool/internal/adapters/telemetry"
	"go.trai.ch/cjtool/internal/core/ports"
)

// NodeID is the unique identifier for the release feed Graft node.
const NodeID graft.ID = "adapter.release_feed"

func init() {
	graft.Register(graft.Node[ports.ReleaseFeed]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{hostenv.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.ReleaseFeed, error) {
			env, err := graft.Dep[ports.HostEnvironment](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewFeed(env.Getenv(APIURLEnvVar), env.Getenv(TokenEnvVar), tracer), nil
		},
	})
}
