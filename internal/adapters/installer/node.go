package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjtool/internal/adapters/download"
	"go.trai.ch/cjtool/internal/adapters/fs"
	"go.trai.ch/cjtool/internal/adapters/github"
	"go.trai.ch/cjtool/internal/adapters/hostenv"
	"go.trai.ch/cjtool/internal/adapters/logger"
	"go.trai.ch/cjtool/internal/adapters/sdk"
	"go.trai.ch/cjtool/internal/adapters/status"
	"go.trai.ch/cjtool/internal/adapters/telemetry"
	"go.trai.ch/cjtool/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			sdk.NodeID,
			fs.ProbeNodeID,
			hostenv.NodeID,
			github.NodeID,
			download.NodeID,
			status.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (ports.Installer, error) {
			var deps Deps
			var err error
			if deps.SDK, err = graft.Dep[ports.SDKRootResolver](ctx); err != nil {
				return nil, err
			}
			if deps.Probe, err = graft.Dep[ports.PathProbe](ctx); err != nil {
				return nil, err
			}
			if deps.Env, err = graft.Dep[ports.HostEnvironment](ctx); err != nil {
				return nil, err
			}
			if deps.Feed, err = graft.Dep[ports.ReleaseFeed](ctx); err != nil {
				return nil, err
			}
			if deps.Downloader, err = graft.Dep[ports.Downloader](ctx); err != nil {
				return nil, err
			}
			if deps.Status, err = graft.Dep[ports.StatusReporter](ctx); err != nil {
				return nil, err
			}
			if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
				return nil, err
			}
			if deps.Tracer, err = graft.Dep[ports.Tracer](ctx); err != nil {
				return nil, err
			}
			return New(deps), nil
		},
	})
}
