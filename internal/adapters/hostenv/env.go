// Package hostenv exposes the process environment behind ports.HostEnvironment.
package hostenv

import (
	"os"
	"runtime"

	"go.trai.ch/cjtool/internal/core/domain"
)

// Env implements ports.HostEnvironment.
// The lookup, executable and platform sources are swappable for tests.
type Env struct {
	lookup     func(string) string
	executable func() (string, error)
	platform   domain.Platform
}

// New creates an Env backed by the running process.
func New() *Env {
	return &Env{
		lookup:     os.Getenv,
		executable: os.Executable,
		platform: domain.Platform{
			OS:   domain.ParseOS(runtime.GOOS),
			Arch: domain.ParseArch(runtime.GOARCH),
		},
	}
}

// NewStatic creates an Env with fixed variables, executable path and platform.
func NewStatic(vars map[string]string, executable string, platform domain.Platform) *Env {
	return &Env{
		lookup: func(key string) string {
			return vars[key]
		},
		executable: func() (string, error) {
			if executable == "" {
				return "", os.ErrNotExist
			}
			return executable, nil
		},
		platform: platform,
	}
}

// Getenv returns the value of the environment variable key.
func (e *Env) Getenv(key string) string {
	return e.lookup(key)
}

// Executable returns the path of the running executable.
func (e *Env) Executable() (string, error) {
	return e.executable()
}

// Platform returns the host operating system and architecture.
func (e *Env) Platform() domain.Platform {
	return e.platform
}

// HomeDir returns HOME, falling back to USERPROFILE.
func (e *Env) HomeDir() (string, error) {
	if home := e.lookup("HOME"); home != "" {
		return home, nil
	}
	if profile := e.lookup("USERPROFILE"); profile != "" {
		return profile, nil
	}
	return "", domain.ErrHomeDirNotFound
}
