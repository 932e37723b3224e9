package ports

import (
	"context"

	"go.trai.ch/cjtool/internal/core/domain"
)

// Installer guarantees a usable binary for a tool, downloading it if needed.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// EnsureInstalled returns the path of a usable binary for the tool.
	EnsureInstalled(ctx context.Context, settings domain.Settings, tool domain.Tool) (string, error)
}

// StatusReporter receives installation progress for display by the host.
type StatusReporter interface {
	// SetStatus records the current installation status of a tool.
	SetStatus(tool string, status domain.InstallStatus)
}
