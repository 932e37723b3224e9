package download_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cjtool/internal/adapters/download"
	"go.trai.ch/cjtool/internal/adapters/telemetry"
	"go.trai.ch/cjtool/internal/core/domain"
)

var payload = []byte("\x7fELF cangjie-lsp binary")

func newServer(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newDownloader(srv *httptest.Server) *download.Downloader {
	return download.NewDownloaderWithClient(srv.Client(), telemetry.NewNoOpTracer())
}

func assertNoLeftovers(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".cjtool-download-", "temporary file left behind")
	}
}

func TestDownloader_Download(t *testing.T) {
	srv := newServer(t, http.StatusOK, payload)
	dest := filepath.Join(t.TempDir(), ".zed", "extensions", "cangjie-lsp-x86_64-unknown-linux-gnu")

	asset := domain.ReleaseAsset{
		Name:        "cangjie-lsp-x86_64-unknown-linux-gnu",
		DownloadURL: srv.URL + "/asset",
		Size:        int64(len(payload)),
		Digest:      digest.FromBytes(payload).String(),
	}
	require.NoError(t, newDownloader(srv).Download(context.Background(), asset, dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assertNoLeftovers(t, filepath.Dir(dest))
}

func TestDownloader_WithoutDigest(t *testing.T) {
	srv := newServer(t, http.StatusOK, payload)
	dest := filepath.Join(t.TempDir(), "tool")

	asset := domain.ReleaseAsset{Name: "tool", DownloadURL: srv.URL}
	require.NoError(t, newDownloader(srv).Download(context.Background(), asset, dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDownloader_ReplacesExisting(t *testing.T) {
	srv := newServer(t, http.StatusOK, payload)
	dest := filepath.Join(t.TempDir(), "tool")
	require.NoError(t, os.WriteFile(dest, []byte("stale"), domain.FilePerm))

	asset := domain.ReleaseAsset{Name: "tool", DownloadURL: srv.URL}
	require.NoError(t, newDownloader(srv).Download(context.Background(), asset, dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDownloader_DigestMismatch(t *testing.T) {
	srv := newServer(t, http.StatusOK, payload)
	dir := t.TempDir()
	dest := filepath.Join(dir, "tool")

	asset := domain.ReleaseAsset{
		Name:        "tool",
		DownloadURL: srv.URL,
		Digest:      digest.FromString("something else").String(),
	}
	err := newDownloader(srv).Download(context.Background(), asset, dest)
	require.ErrorIs(t, err, domain.ErrDigestMismatch)

	assert.NoFileExists(t, dest)
	assertNoLeftovers(t, dir)
}

func TestDownloader_SizeMismatch(t *testing.T) {
	srv := newServer(t, http.StatusOK, payload)
	dir := t.TempDir()
	dest := filepath.Join(dir, "tool")

	asset := domain.ReleaseAsset{Name: "tool", DownloadURL: srv.URL, Size: int64(len(payload)) + 1}
	err := newDownloader(srv).Download(context.Background(), asset, dest)
	require.ErrorIs(t, err, domain.ErrDownloadFailed)

	assert.NoFileExists(t, dest)
	assertNoLeftovers(t, dir)
}

func TestDownloader_BadStatus(t *testing.T) {
	srv := newServer(t, http.StatusNotFound, []byte("not found"))
	dest := filepath.Join(t.TempDir(), "tool")

	asset := domain.ReleaseAsset{Name: "tool", DownloadURL: srv.URL}
	err := newDownloader(srv).Download(context.Background(), asset, dest)
	require.ErrorIs(t, err, domain.ErrDownloadFailed)
	assert.NoFileExists(t, dest)
}

func TestDownloader_MalformedDigest(t *testing.T) {
	srv := newServer(t, http.StatusOK, payload)
	dest := filepath.Join(t.TempDir(), "tool")

	asset := domain.ReleaseAsset{Name: "tool", DownloadURL: srv.URL, Digest: "sha256:nothex"}
	err := newDownloader(srv).Download(context.Background(), asset, dest)
	require.ErrorIs(t, err, domain.ErrDownloadFailed)
	assert.ErrorIs(t, err, digest.ErrDigestInvalidLength)
	assert.NoFileExists(t, dest)
}
