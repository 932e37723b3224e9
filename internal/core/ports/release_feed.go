package ports

import (
	"context"

	"go.trai.ch/cjtool/internal/core/domain"
)

// ReleaseFeed queries published toolchain releases.
//
//go:generate go run go.uber.org/mock/mockgen -source=release_feed.go -destination=mocks/mock_release_feed.go -package=mocks
type ReleaseFeed interface {
	// Latest returns the newest stable release of repo that has at least one asset.
	Latest(ctx context.Context, repo string) (*domain.Release, error)
}

// Downloader fetches release assets to the local filesystem.
type Downloader interface {
	// Download writes the asset to dest. On failure dest is left untouched.
	Download(ctx context.Context, asset domain.ReleaseAsset, dest string) error
}
