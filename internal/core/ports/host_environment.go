package ports

import "go.trai.ch/cjtool/internal/core/domain"

// HostEnvironment exposes process-level facts about the host.
//
//go:generate go run go.uber.org/mock/mockgen -source=host_environment.go -destination=mocks/mock_host_environment.go -package=mocks
type HostEnvironment interface {
	// Getenv returns the value of an environment variable, or "" when unset.
	Getenv(key string) string

	// Executable returns the path of the running executable.
	Executable() (string, error)

	// Platform returns the host operating system and architecture.
	Platform() domain.Platform

	// HomeDir returns HOME, falling back to USERPROFILE.
	HomeDir() (string, error)
}
