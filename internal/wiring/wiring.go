// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cjtool/internal/adapters/config"
	_ "go.trai.ch/cjtool/internal/adapters/download"
	_ "go.trai.ch/cjtool/internal/adapters/fs"
	_ "go.trai.ch/cjtool/internal/adapters/github"
	_ "go.trai.ch/cjtool/internal/adapters/hostenv"
	_ "go.trai.ch/cjtool/internal/adapters/installer"
	_ "go.trai.ch/cjtool/internal/adapters/logger"
	_ "go.trai.ch/cjtool/internal/adapters/sdk"
	_ "go.trai.ch/cjtool/internal/adapters/status"
	_ "go.trai.ch/cjtool/internal/adapters/telemetry"
	_ "go.trai.ch/cjtool/internal/adapters/throttle"
	_ "go.trai.ch/cjtool/internal/adapters/toolpath"
	_ "go.trai.ch/cjtool/internal/adapters/updates"
	// Register app nodes.
	_ "go.trai.ch/cjtool/internal/app"
)
