// Package installer provisions toolchain binaries that are missing from the SDK.
package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Installer implements ports.Installer.
//
// A tool is taken from its configured override, then from the SDK bin
// directory, and only then downloaded from the latest release. Every caller
// checks its own override and SDK; concurrent downloads to the same
// destination share one transfer.
type Installer struct {
	sdk        ports.SDKRootResolver
	probe      ports.PathProbe
	env        ports.HostEnvironment
	feed       ports.ReleaseFeed
	downloader ports.Downloader
	status     ports.StatusReporter
	logger     ports.Logger
	tracer     ports.Tracer

	group singleflight.Group
}

// Deps groups the collaborators of an Installer.
type Deps struct {
	SDK        ports.SDKRootResolver
	Probe      ports.PathProbe
	Env        ports.HostEnvironment
	Feed       ports.ReleaseFeed
	Downloader ports.Downloader
	Status     ports.StatusReporter
	Logger     ports.Logger
	Tracer     ports.Tracer
}

// New creates a new Installer.
func New(deps Deps) *Installer {
	return &Installer{
		sdk:        deps.SDK,
		probe:      deps.Probe,
		env:        deps.Env,
		feed:       deps.Feed,
		downloader: deps.Downloader,
		status:     deps.Status,
		logger:     deps.Logger,
		tracer:     deps.Tracer,
	}
}

// EnsureInstalled returns the path of tool, downloading it when neither an
// override nor the SDK provides it.
func (i *Installer) EnsureInstalled(ctx context.Context, settings domain.Settings, tool domain.Tool) (string, error) {
	ctx, span := i.tracer.Start(ctx, "tool.install", ports.WithAttribute("tool.name", tool.Name))
	defer span.End()

	// 1. Path override
	if override := settings.PathOverride(tool.Name); override != "" {
		path, err := i.fromOverride(settings, tool, override)
		if err != nil {
			span.RecordError(err)
			return "", err
		}
		span.SetAttribute("install.source", "override")
		return path, nil
	}

	// 2. SDK bin directory
	path, err := i.fromSDK(ctx, settings, tool)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if path != "" {
		span.SetAttribute("install.source", "sdk")
		return path, nil
	}

	// 3. Release download
	if !tool.Downloadable {
		err = zerr.Wrap(domain.ErrToolNotDownloadable, tool.Name+" is not published as a standalone release asset")
		err = zerr.With(err, "tool", tool.Name)
		span.RecordError(err)
		return "", err
	}

	path, err = i.sharedDownload(ctx, tool)
	if err != nil {
		// A cancelled caller leaves a shared transfer to report its own outcome.
		if ctx.Err() == nil {
			i.status.SetStatus(tool.Name, domain.StatusFailed)
		}
		err = domain.NewInstallError(tool.Name, err)
		span.RecordError(err)
		return "", err
	}
	span.SetAttribute("install.source", "download")
	return path, nil
}

// fromOverride validates a configured override. Unlike tool resolution, a
// broken override is fatal here.
func (i *Installer) fromOverride(settings domain.Settings, tool domain.Tool, override string) (string, error) {
	candidate := override
	if !filepath.IsAbs(candidate) && settings.BaseDir != "" {
		candidate = filepath.Join(settings.BaseDir, candidate)
	}

	if !i.probe.IsFile(candidate) {
		err := zerr.Wrap(domain.ErrInvalidOverride, fmt.Sprintf("path override for %s does not exist", tool.Name))
		err = zerr.With(err, "tool", tool.Name)
		return "", zerr.With(err, "path", override)
	}

	path, err := i.probe.Canonicalize(candidate)
	if err != nil {
		return "", zerr.With(err, "tool", tool.Name)
	}
	i.logger.Debug(fmt.Sprintf("using path override for %s: %s", tool.Name, path))
	return path, nil
}

// fromSDK returns the tool from the SDK bin directory, or "" when the SDK
// cannot be found or does not ship the tool.
func (i *Installer) fromSDK(ctx context.Context, settings domain.Settings, tool domain.Tool) (string, error) {
	root, err := i.sdk.Resolve(ctx, settings)
	if errors.Is(err, domain.ErrSDKNotFound) {
		i.logger.Debug("no sdk found, " + tool.Name + " must be downloaded")
		return "", nil
	}
	if err != nil {
		return "", err
	}

	candidate := filepath.Join(root, tool.Dir(), domain.BinaryName(i.env.Platform().OS, tool.Name))
	if !i.probe.IsFile(candidate) {
		i.logger.Debug(fmt.Sprintf("%s not found in sdk root %s", tool.Name, root))
		return "", nil
	}
	return i.probe.Canonicalize(candidate)
}

// sharedDownload downloads tool into the extensions directory. Callers
// targeting the same destination join the transfer already in flight. The
// transfer runs detached from ctx; a cancelled caller stops waiting for it.
func (i *Installer) sharedDownload(ctx context.Context, tool domain.Tool) (string, error) {
	platform := i.env.Platform()
	assetName, err := domain.AssetName(platform.OS, platform.Arch, tool.Name)
	if err != nil {
		return "", err
	}

	home, err := i.env.HomeDir()
	if err != nil {
		return "", err
	}
	dest := filepath.Join(domain.DownloadDir(home), assetName)

	detached := context.WithoutCancel(ctx)
	ch := i.group.DoChan(dest, func() (any, error) {
		if err := i.download(detached, tool, platform, assetName, dest); err != nil {
			return nil, err
		}
		return dest, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Shared {
			i.logger.Debug("download of " + assetName + " shared with concurrent callers")
		}
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (i *Installer) download(ctx context.Context, tool domain.Tool, platform domain.Platform, assetName, dest string) error {
	i.status.SetStatus(tool.Name, domain.StatusCheckingForUpdate)
	release, err := i.feed.Latest(ctx, domain.ReleaseRepository)
	if err != nil {
		return err
	}

	asset, ok := release.FindAsset(assetName)
	if !ok {
		notFound := zerr.Wrap(domain.ErrAssetNotFound, "no asset found matching "+assetName)
		notFound = zerr.With(notFound, "release", release.TagName)
		return zerr.With(notFound, "platform", platform.String())
	}

	i.status.SetStatus(tool.Name, domain.StatusDownloading)
	i.logger.Debug(fmt.Sprintf("downloading %s %s to %s", asset.Name, release.TagName, dest))
	if err := i.downloader.Download(ctx, asset, dest); err != nil {
		return err
	}

	if platform.OS != domain.Windows {
		if err := os.Chmod(dest, domain.ExecPerm); err != nil {
			return zerr.With(domain.WrapKind(domain.ErrMakeExecutableFailed, err), "path", dest)
		}
	}

	i.status.SetStatus(tool.Name, domain.StatusInstalled)
	return nil
}
