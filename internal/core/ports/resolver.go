package ports

import (
	"context"

	"go.trai.ch/cjtool/internal/core/domain"
)

// SDKRootResolver locates the Cangjie SDK root directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SDKRootResolver interface {
	// Resolve returns the absolute SDK root, trying each source in precedence order.
	Resolve(ctx context.Context, settings domain.Settings) (string, error)
}

// ToolResolver locates toolchain binaries.
type ToolResolver interface {
	// Resolve returns the canonical path of the tool's binary.
	Resolve(ctx context.Context, settings domain.Settings, tool domain.Tool) (string, error)
}
