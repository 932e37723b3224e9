package toolpath

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.ToolResolver.
//
// A tool is looked up in the cache, then at its configured override, then
// inside the SDK root. Only successful resolutions are cached.
type Resolver struct {
	cache  *Cache
	sdk    ports.SDKRootResolver
	probe  ports.PathProbe
	env    ports.HostEnvironment
	logger ports.Logger
	tracer ports.Tracer
}

// NewResolver creates a new Resolver.
func NewResolver(
	cache *Cache,
	sdk ports.SDKRootResolver,
	probe ports.PathProbe,
	env ports.HostEnvironment,
	logger ports.Logger,
	tracer ports.Tracer,
) *Resolver {
	return &Resolver{
		cache:  cache,
		sdk:    sdk,
		probe:  probe,
		env:    env,
		logger: logger,
		tracer: tracer,
	}
}

// Resolve returns the canonical path of tool.
func (r *Resolver) Resolve(ctx context.Context, settings domain.Settings, tool domain.Tool) (string, error) {
	ctx, span := r.tracer.Start(ctx, "tool.resolve", ports.WithAttribute("tool.name", tool.Name))
	defer span.End()

	key := tool.CacheKey()
	if path, ok := r.cache.Load(key); ok {
		span.SetAttribute("tool.cached", true)
		return path, nil
	}

	if override := settings.PathOverride(tool.Name); override != "" {
		path, ok, err := r.fromOverride(settings, tool, override)
		if err != nil {
			span.RecordError(err)
			return "", err
		}
		if ok {
			return r.store(span, key, path), nil
		}
	}

	root, err := r.sdk.Resolve(ctx, settings)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	candidate := filepath.Join(root, tool.Dir(), domain.BinaryName(r.env.Platform().OS, tool.Name))
	if !r.probe.IsFile(candidate) {
		err = zerr.Wrap(domain.ErrToolNotFound, fmt.Sprintf("%s not found in sdk root %s", tool.Name, root))
		err = zerr.With(err, "tool", tool.Name)
		err = zerr.With(err, "path", candidate)
		span.RecordError(err)
		return "", err
	}

	path, err := r.probe.Canonicalize(candidate)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return r.store(span, key, path), nil
}

// fromOverride checks a configured override. An override that is neither a
// file nor a symlink is reported and skipped.
func (r *Resolver) fromOverride(settings domain.Settings, tool domain.Tool, override string) (string, bool, error) {
	candidate := override
	if !filepath.IsAbs(candidate) && settings.BaseDir != "" {
		candidate = filepath.Join(settings.BaseDir, candidate)
	}

	if !r.probe.IsFile(candidate) {
		r.logger.Warn(fmt.Sprintf("invalid path override for %s: %q, falling back to sdk", tool.Name, override))
		return "", false, nil
	}

	path, err := r.probe.Canonicalize(candidate)
	if err != nil {
		return "", false, zerr.With(err, "tool", tool.Name)
	}
	r.logger.Debug(fmt.Sprintf("using path override for %s: %s", tool.Name, path))
	return path, true, nil
}

func (r *Resolver) store(span ports.Span, key, path string) string {
	path = r.cache.Store(key, path)
	span.SetAttribute("tool.path", path)
	return path
}
