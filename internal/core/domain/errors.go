package domain

import "go.trai.ch/zerr"

var (
	// ErrSDKNotFound is returned when no Cangjie SDK root could be located.
	ErrSDKNotFound = zerr.New("cangjie sdk not found")

	// ErrToolNotFound is returned when a toolchain binary cannot be located.
	ErrToolNotFound = zerr.New("tool not found")

	// ErrInvalidOverride is returned when a configured tool path override does not exist.
	ErrInvalidOverride = zerr.New("invalid tool path override")

	// ErrUnsupportedPlatform is returned when no release asset exists for the host OS and architecture.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrInstallFailed is returned when a tool could not be provisioned.
	ErrInstallFailed = zerr.New("failed to install tool")

	// ErrReleaseQueryFailed is returned when the release feed cannot be queried.
	ErrReleaseQueryFailed = zerr.New("failed to query release feed")

	// ErrReleaseParseFailed is returned when the release feed response cannot be decoded.
	ErrReleaseParseFailed = zerr.New("failed to parse release feed response")

	// ErrReleaseNotFound is returned when the feed has no stable release with assets.
	ErrReleaseNotFound = zerr.New("no stable release with assets found")

	// ErrAssetNotFound is returned when the latest release has no asset for the host platform.
	ErrAssetNotFound = zerr.New("release asset not found")

	// ErrDownloadFailed is returned when a release asset cannot be downloaded.
	ErrDownloadFailed = zerr.New("failed to download release asset")

	// ErrDigestMismatch is returned when downloaded content does not match the published digest.
	ErrDigestMismatch = zerr.New("downloaded file digest mismatch")

	// ErrMakeExecutableFailed is returned when the downloaded binary cannot be marked executable.
	ErrMakeExecutableFailed = zerr.New("failed to make binary executable")

	// ErrHomeDirNotFound is returned when neither HOME nor USERPROFILE is set.
	ErrHomeDirNotFound = zerr.New("home directory not found, set HOME or USERPROFILE")

	// ErrToolNotDownloadable is returned when a missing tool has no release asset to install from.
	ErrToolNotDownloadable = zerr.New("tool is not downloadable")

	// ErrUnknownTool is returned when a tool name does not match any known toolchain binary.
	ErrUnknownTool = zerr.New("unknown tool")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCanonicalizeFailed is returned when a resolved path cannot be made canonical.
	ErrCanonicalizeFailed = zerr.New("failed to canonicalize path")

	// ErrUpdateCheckFailed is returned when the latest release cannot be compared against the installed one.
	ErrUpdateCheckFailed = zerr.New("failed to check for updates")
)
