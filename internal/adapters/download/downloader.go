// Package download fetches release assets to the local filesystem.
package download

import (
	"context"
	_ "crypto/sha256" // registers sha256 for digest verification
	_ "crypto/sha512" // registers sha384 and sha512 for digest verification
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 10 * time.Minute

// Downloader implements ports.Downloader.
//
// Assets are streamed into a temporary file next to the destination and
// renamed into place only after the size and digest checks pass, so the
// destination never holds a partial file.
type Downloader struct {
	httpClient *http.Client
	tracer     ports.Tracer
}

// NewDownloader creates a new Downloader.
func NewDownloader(tracer ports.Tracer) *Downloader {
	return NewDownloaderWithClient(&http.Client{Timeout: httpClientTimeout}, tracer)
}

// NewDownloaderWithClient creates a Downloader that issues requests through client.
func NewDownloaderWithClient(client *http.Client, tracer ports.Tracer) *Downloader {
	return &Downloader{
		httpClient: client,
		tracer:     tracer,
	}
}

// Download writes asset to dest, replacing any existing file.
func (d *Downloader) Download(ctx context.Context, asset domain.ReleaseAsset, dest string) (err error) {
	ctx, span := d.tracer.Start(ctx, "release.download",
		ports.WithAttribute("asset.name", asset.Name),
		ports.WithAttribute("asset.size", asset.Size),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	var expected digest.Digest
	if asset.Digest != "" {
		expected, err = digest.Parse(asset.Digest)
		if err != nil {
			return zerr.With(domain.WrapKind(domain.ErrDownloadFailed, err), "digest", asset.Digest)
		}
	}

	dir := filepath.Dir(dest)
	if err = os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(domain.WrapKind(domain.ErrDownloadFailed, err), "dir", dir)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.DownloadURL, http.NoBody)
	if err != nil {
		return domain.WrapKind(domain.ErrDownloadFailed, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrDownloadFailed, err), "url", asset.DownloadURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.Wrap(domain.ErrDownloadFailed, "unexpected status "+resp.Status)
		statusErr = zerr.With(statusErr, "status_code", resp.StatusCode)
		return zerr.With(statusErr, "url", asset.DownloadURL)
	}

	tmp, err := os.CreateTemp(dir, ".cjtool-download-*")
	if err != nil {
		return domain.WrapKind(domain.ErrDownloadFailed, err)
	}
	tmpName := tmp.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err = copyVerified(tmp, resp.Body, asset, expected); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return domain.WrapKind(domain.ErrDownloadFailed, err)
	}

	if err = os.Chmod(tmpName, domain.FilePerm); err != nil {
		return domain.WrapKind(domain.ErrDownloadFailed, err)
	}

	if err = os.Rename(tmpName, dest); err != nil {
		return zerr.With(domain.WrapKind(domain.ErrDownloadFailed, err), "path", dest)
	}
	return nil
}

// copyVerified streams src into dst and checks the byte count and digest.
func copyVerified(dst io.Writer, src io.Reader, asset domain.ReleaseAsset, expected digest.Digest) error {
	reader := src

	var digester digest.Digester
	if expected != "" {
		digester = expected.Algorithm().Digester()
		reader = io.TeeReader(reader, digester.Hash())
	}

	written, err := io.Copy(dst, reader)
	if err != nil {
		return domain.WrapKind(domain.ErrDownloadFailed, err)
	}

	if asset.Size > 0 && written != asset.Size {
		sizeErr := zerr.Wrap(domain.ErrDownloadFailed, fmt.Sprintf("expected %d bytes, received %d", asset.Size, written))
		return zerr.With(sizeErr, "asset", asset.Name)
	}

	if digester != nil {
		if actual := digester.Digest(); actual != expected {
			mismatch := zerr.Wrap(domain.ErrDigestMismatch, "downloaded content does not match the published digest")
			mismatch = zerr.With(mismatch, "expected", expected.String())
			return zerr.With(mismatch, "actual", actual.String())
		}
	}
	return nil
}
