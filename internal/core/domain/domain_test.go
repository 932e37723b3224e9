package domain_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestAssetName(t *testing.T) {
	tests := []struct {
		name string
		os   domain.OSFamily
		arch domain.Arch
		base string
		want string
	}{
		{
			name: "macOS arm64",
			os:   domain.MacOS,
			arch: domain.Aarch64,
			base: "cangjie-lsp",
			want: "cangjie-lsp-aarch64-apple-darwin",
		},
		{
			name: "macOS x86_64",
			os:   domain.MacOS,
			arch: domain.X8664,
			base: "cangjie-lsp",
			want: "cangjie-lsp-x86_64-apple-darwin",
		},
		{
			name: "Linux x86_64",
			os:   domain.Linux,
			arch: domain.X8664,
			base: "cangjie-lsp",
			want: "cangjie-lsp-x86_64-unknown-linux-gnu",
		},
		{
			name: "Linux aarch64",
			os:   domain.Linux,
			arch: domain.Aarch64,
			base: "cangjie-lsp",
			want: "cangjie-lsp-aarch64-unknown-linux-gnu",
		},
		{
			name: "Windows x86_64",
			os:   domain.Windows,
			arch: domain.X8664,
			base: "cangjie-lsp",
			want: "cangjie-lsp-x86_64-pc-windows-msvc.exe",
		},
		{
			name: "Windows aarch64",
			os:   domain.Windows,
			arch: domain.Aarch64,
			base: "cangjie-lsp",
			want: "cangjie-lsp-aarch64-pc-windows-msvc.exe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.AssetName(tt.os, tt.arch, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssetName_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		os   domain.OSFamily
		arch domain.Arch
	}{
		{name: "unknown arch", os: domain.Linux, arch: domain.ArchUnknown},
		{name: "unknown os", os: domain.OSUnknown, arch: domain.X8664},
		{name: "both unknown", os: domain.OSUnknown, arch: domain.ArchUnknown},
		{name: "out of range", os: domain.OSFamily(42), arch: domain.Arch(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.AssetName(tt.os, tt.arch, "cangjie-lsp")
			require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
			assert.Empty(t, got)
		})
	}
}

func TestBinaryName(t *testing.T) {
	for _, tool := range domain.KnownTools() {
		assert.Equal(t, tool.Name+".exe", domain.BinaryName(domain.Windows, tool.Name))
		assert.Equal(t, tool.Name, domain.BinaryName(domain.Linux, tool.Name))
		assert.Equal(t, tool.Name, domain.BinaryName(domain.MacOS, tool.Name))
	}
}

func TestParsePlatform(t *testing.T) {
	assert.Equal(t, domain.Linux, domain.ParseOS("linux"))
	assert.Equal(t, domain.MacOS, domain.ParseOS("darwin"))
	assert.Equal(t, domain.MacOS, domain.ParseOS("macos"))
	assert.Equal(t, domain.Windows, domain.ParseOS("windows"))
	assert.Equal(t, domain.OSUnknown, domain.ParseOS("plan9"))

	assert.Equal(t, domain.X8664, domain.ParseArch("amd64"))
	assert.Equal(t, domain.X8664, domain.ParseArch("x86_64"))
	assert.Equal(t, domain.Aarch64, domain.ParseArch("arm64"))
	assert.Equal(t, domain.Aarch64, domain.ParseArch("aarch64"))
	assert.Equal(t, domain.ArchUnknown, domain.ParseArch("riscv64"))

	assert.Equal(t, "macos/aarch64", domain.Platform{OS: domain.MacOS, Arch: domain.Aarch64}.String())
}

func TestTool(t *testing.T) {
	t.Run("cache keys", func(t *testing.T) {
		assert.Equal(t, "tool_path_cjc", domain.Compiler.CacheKey())
		assert.Equal(t, "tool_path_cjc-frontend", domain.CompilerFrontend.CacheKey())
		assert.Equal(t, "tool_path_cangjie-lsp", domain.LanguageServer.CacheKey())
	})

	t.Run("only the language server is downloadable", func(t *testing.T) {
		assert.False(t, domain.Compiler.Downloadable)
		assert.False(t, domain.CompilerFrontend.Downloadable)
		assert.True(t, domain.LanguageServer.Downloadable)
	})

	t.Run("dir defaults to bin", func(t *testing.T) {
		assert.Equal(t, "bin", domain.Tool{Name: "x"}.Dir())
		assert.Equal(t, "tools/bin", domain.Tool{Name: "x", Subdir: "tools/bin"}.Dir())
	})

	t.Run("lookup", func(t *testing.T) {
		tool, err := domain.LookupTool("cjc-frontend")
		require.NoError(t, err)
		assert.Equal(t, domain.CompilerFrontend, tool)

		_, err = domain.LookupTool("cjpm")
		require.ErrorIs(t, err, domain.ErrUnknownTool)
		assert.Contains(t, err.Error(), "cjpm")
	})
}

func TestSettings(t *testing.T) {
	var empty domain.Settings
	assert.Empty(t, empty.PathOverride("cjc"))
	assert.Nil(t, empty.Tool("cangjie-lsp").Arguments)

	s := domain.Settings{
		Tools: map[string]domain.ToolSettings{
			"cjc":         {PathOverride: "/usr/bin/cjc"},
			"cangjie-lsp": {Arguments: []string{}},
		},
	}
	assert.Equal(t, "/usr/bin/cjc", s.PathOverride("cjc"))
	assert.NotNil(t, s.Tool("cangjie-lsp").Arguments)
	assert.Empty(t, s.Tool("cangjie-lsp").Arguments)
}

func TestReleaseFindAsset(t *testing.T) {
	r := &domain.Release{
		Assets: []domain.ReleaseAsset{
			{Name: "cangjie-lsp-x86_64-unknown-linux-gnu.tar.gz"},
			{Name: "cangjie-lsp-x86_64-unknown-linux-gnu"},
		},
	}

	a, ok := r.FindAsset("cangjie-lsp-x86_64-unknown-linux-gnu")
	require.True(t, ok)
	assert.Equal(t, "cangjie-lsp-x86_64-unknown-linux-gnu", a.Name)

	_, ok = r.FindAsset("cangjie-lsp")
	assert.False(t, ok)
}

func TestInstallStatusString(t *testing.T) {
	assert.Equal(t, "downloading", domain.StatusDownloading.String())
	assert.Equal(t, "checking for update", domain.StatusCheckingForUpdate.String())
	assert.Equal(t, "unknown", domain.InstallStatus(99).String())
}

func TestInstallError(t *testing.T) {
	cause := zerr.Wrap(domain.ErrDigestMismatch, "content changed")
	err := domain.NewInstallError("cangjie-lsp", cause)

	require.ErrorIs(t, err, domain.ErrInstallFailed)
	require.ErrorIs(t, err, domain.ErrDigestMismatch)
	assert.ErrorContains(t, err, "failed to install tool cangjie-lsp")

	var installErr *domain.InstallError
	require.ErrorAs(t, err, &installErr)
	assert.Equal(t, "cangjie-lsp", installErr.Tool)
}

func TestWrapKind(t *testing.T) {
	cause := &os.PathError{Op: "chmod", Path: "/home/dev/.zed/extensions/cangjie-lsp", Err: os.ErrPermission}
	err := domain.WrapKind(domain.ErrMakeExecutableFailed, cause)

	require.ErrorIs(t, err, domain.ErrMakeExecutableFailed)
	require.ErrorIs(t, err, os.ErrPermission)
	assert.NotErrorIs(t, err, domain.ErrDownloadFailed)
	assert.Equal(t, "failed to make binary executable: chmod /home/dev/.zed/extensions/cangjie-lsp: permission denied", err.Error())

	withPath := zerr.With(err, "path", cause.Path)
	assert.ErrorIs(t, withPath, domain.ErrMakeExecutableFailed)

	assert.NoError(t, domain.WrapKind(domain.ErrDownloadFailed, nil))
}
