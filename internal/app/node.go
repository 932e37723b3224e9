package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjtool/internal/adapters/config"
	"go.trai.ch/cjtool/internal/adapters/installer"
	"go.trai.ch/cjtool/internal/adapters/logger"
	"go.trai.ch/cjtool/internal/adapters/sdk"
	"go.trai.ch/cjtool/internal/adapters/toolpath"
	"go.trai.ch/cjtool/internal/adapters/updates"
	"go.trai.ch/cjtool/internal/core/ports"
)

// Components holds everything the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			sdk.NodeID,
			toolpath.NodeID,
			installer.NodeID,
			updates.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			settings, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			sdkResolver, err := graft.Dep[ports.SDKRootResolver](ctx)
			if err != nil {
				return nil, err
			}
			tools, err := graft.Dep[ports.ToolResolver](ctx)
			if err != nil {
				return nil, err
			}
			inst, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}
			checker, err := graft.Dep[ports.UpdateChecker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(settings, sdkResolver, tools, inst, checker, log),
				Logger: log,
			}, nil
		},
	})
}
