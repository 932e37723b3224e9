// Package fs implements filesystem probing for toolchain resolution.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/zerr"
)

// Probe implements ports.PathProbe using the host filesystem.
type Probe struct{}

// NewProbe creates a new Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// IsFile reports whether path is a regular file or a symlink.
// The link itself is inspected, so a dangling symlink still counts.
func (p *Probe) IsFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() || info.Mode()&os.ModeSymlink != 0
}

// IsDir reports whether path is a directory, following symlinks.
func (p *Probe) IsDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Canonicalize returns the absolute form of path with symlinks resolved.
func (p *Probe) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(domain.WrapKind(domain.ErrCanonicalizeFailed, err), "path", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(domain.WrapKind(domain.ErrCanonicalizeFailed, err), "path", path)
	}
	return resolved, nil
}
