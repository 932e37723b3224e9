package toolpath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjtool/internal/adapters/fs"
	"go.trai.ch/cjtool/internal/adapters/hostenv"
	"go.trai.ch/cjtool/internal/adapters/logger"
	"go.trai.ch/cjtool/internal/adapters/sdk"
	"go.trai.ch/cjtool/internal/adapters/telemetry"
	"go.trai.ch/cjtool/internal/core/ports"
)

const (
	// CacheNodeID is the unique identifier for the tool path cache Graft node.
	CacheNodeID graft.ID = "adapter.tool_path_cache"
	// NodeID is the unique identifier for the tool resolver Graft node.
	NodeID graft.ID = "adapter.tool_resolver"
)

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        CacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Cache, error) {
			return NewCache(), nil
		},
	})

	graft.Register(graft.Node[ports.ToolResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			CacheNodeID,
			sdk.NodeID,
			fs.ProbeNodeID,
			hostenv.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (ports.ToolResolver, error) {
			cache, err := graft.Dep[*Cache](ctx)
			if err != nil {
				return nil, err
			}
			sdkResolver, err := graft.Dep[ports.SDKRootResolver](ctx)
			if err != nil {
				return nil, err
			}
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
			return NewResolver(cache, sdkResolver, probe, env, log, tracer), nil
		},
	})
}
