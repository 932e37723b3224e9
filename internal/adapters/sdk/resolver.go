// Package sdk locates the Cangjie SDK root through an ordered fallback search.
package sdk

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.SDKRootResolver.
//
// Sources are tried in order: the configured sdkPath, CANGJIE_HOME, the
// location of the running executable, and the per-OS install locations.
// Resolution fails closed when every source is exhausted.
type Resolver struct {
	probe  ports.PathProbe
	env    ports.HostEnvironment
	logger ports.Logger
	tracer ports.Tracer
}

// NewResolver creates a new Resolver.
func NewResolver(probe ports.PathProbe, env ports.HostEnvironment, logger ports.Logger, tracer ports.Tracer) *Resolver {
	return &Resolver{
		probe:  probe,
		env:    env,
		logger: logger,
		tracer: tracer,
	}
}

// DefaultRoots returns the conventional SDK install locations for an OS family.
func DefaultRoots(os domain.OSFamily) []string {
	switch os {
	case domain.Windows:
		return []string{`C:\Program Files\Cangjie`, `C:\Program Files (x86)\Cangjie`}
	case domain.MacOS:
		return []string{"/usr/local/opt/cangjie", "/opt/homebrew/opt/cangjie"}
	case domain.Linux, domain.OSUnknown:
		return []string{"/usr/local/cangjie", "/opt/cangjie"}
	default:
		return []string{"/usr/local/cangjie", "/opt/cangjie"}
	}
}

// Resolve returns the SDK root for the given settings.
func (r *Resolver) Resolve(ctx context.Context, settings domain.Settings) (string, error) {
	_, span := r.tracer.Start(ctx, "sdk.resolve")
	defer span.End()

	var attempted []string

	// 1. Configured sdkPath
	if configured := settings.SDKPath; configured != "" {
		attempted = append(attempted, configured)
		if r.probe.IsDir(configured) {
			return r.found(span, "settings", filepath.Clean(configured)), nil
		}
		r.logger.Warn(fmt.Sprintf("configured %s %q does not exist or is not a directory", domain.SDKPathKey, configured))
	}

	// 2. CANGJIE_HOME
	if home := r.env.Getenv(domain.SDKHomeEnvVar); home != "" {
		attempted = append(attempted, home)
		switch {
		case !filepath.IsAbs(home):
			r.logger.Warn(fmt.Sprintf("%s must be an absolute path, got %q", domain.SDKHomeEnvVar, home))
		case !r.probe.IsDir(home):
			r.logger.Warn(fmt.Sprintf("%s points to an invalid path: %q", domain.SDKHomeEnvVar, home))
		default:
			return r.found(span, "environment", filepath.Clean(home)), nil
		}
	}

	// 3. Executable location
	root, candidates := r.fromExecutable()
	if root != "" {
		return r.found(span, "executable", root), nil
	}
	attempted = append(attempted, candidates...)

	// 4. OS defaults
	for _, candidate := range DefaultRoots(r.env.Platform().OS) {
		attempted = append(attempted, candidate)
		r.logger.Debug("probing default sdk location " + candidate)
		if r.isSDKRoot(candidate) {
			return r.found(span, "default", candidate), nil
		}
	}

	err := zerr.Wrap(domain.ErrSDKNotFound, fmt.Sprintf(
		"set the %s environment variable or configure %q in %s",
		domain.SDKHomeEnvVar, domain.SDKPathKey, domain.ConfigFileName,
	))
	err = zerr.With(err, "attempted", strings.Join(attempted, ", "))
	span.RecordError(err)
	return "", err
}

// fromExecutable infers the root from the directory layout around the
// running executable. <root>/tools/bin/<exe> is tried before <root>/bin/<exe>,
// so an executable in tools/bin never resolves to the tools directory itself.
// It returns the accepted root, or "" and the candidates that were rejected.
func (r *Resolver) fromExecutable() (string, []string) {
	exe, err := r.env.Executable()
	if err != nil {
		r.logger.Warn("failed to get current executable path: " + err.Error())
		return "", nil
	}
	r.logger.Debug("inferring sdk root from executable " + exe)

	exeDir := filepath.Dir(exe)
	if filepath.Base(exeDir) != domain.BinDirName {
		return "", nil
	}

	var candidates []string

	parent := filepath.Dir(exeDir)
	if filepath.Base(parent) == domain.ToolsDirName {
		candidate := filepath.Dir(parent)
		candidates = append(candidates, candidate)
		if r.isSDKRoot(candidate) {
			return candidate, nil
		}
	}

	candidates = append(candidates, parent)
	if r.isSDKRoot(parent) {
		return parent, nil
	}

	return "", candidates
}

// isSDKRoot reports whether dir is a directory containing a bin directory.
func (r *Resolver) isSDKRoot(dir string) bool {
	return r.probe.IsDir(dir) && r.probe.IsDir(domain.SDKBinDir(dir))
}

func (r *Resolver) found(span ports.Span, source, root string) string {
	span.SetAttribute("sdk.source", source)
	span.SetAttribute("sdk.root", root)
	r.logger.Debug(fmt.Sprintf("using sdk root %s (from %s)", root, source))
	return root
}
