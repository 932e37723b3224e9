// Package github implements the ReleaseFeed port on top of the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultAPIURL is the public GitHub REST endpoint.
	DefaultAPIURL = "https://api.github.com"
	// APIURLEnvVar overrides the REST endpoint, as on GitHub Enterprise runners.
	APIURLEnvVar = "GITHUB_API_URL"
	// TokenEnvVar holds an optional bearer token.
	TokenEnvVar = "GITHUB_TOKEN"

	httpClientTimeout = 30 * time.Second
	releasesPerPage   = 30
	apiVersion        = "2022-11-28"
	userAgent         = "cjtool"
)

// Feed implements ports.ReleaseFeed.
type Feed struct {
	baseURL    string
	token      string
	httpClient *http.Client
	tracer     ports.Tracer
}

// NewFeed creates a Feed for baseURL. An empty token sends unauthenticated requests.
func NewFeed(baseURL, token string, tracer ports.Tracer) *Feed {
	return NewFeedWithClient(baseURL, token, &http.Client{Timeout: httpClientTimeout}, tracer)
}

// NewFeedWithClient creates a Feed that issues requests through client.
func NewFeedWithClient(baseURL, token string, client *http.Client, tracer ports.Tracer) *Feed {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Feed{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: client,
		tracer:     tracer,
	}
}

// Latest returns the newest published release of repo that is neither a
// draft nor a prerelease and carries at least one asset.
func (f *Feed) Latest(ctx context.Context, repo string) (*domain.Release, error) {
	ctx, span := f.tracer.Start(ctx, "release.latest", ports.WithAttribute("release.repository", repo))
	defer span.End()

	releases, err := f.list(ctx, repo)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	for i := range releases {
		rel := &releases[i]
		if rel.Draft || rel.Prerelease || len(rel.Assets) == 0 {
			continue
		}
		span.SetAttribute("release.tag", rel.TagName)
		return toDomain(rel), nil
	}

	err = zerr.With(zerr.Wrap(domain.ErrReleaseNotFound, "no stable release with assets"), "repository", repo)
	span.RecordError(err)
	return nil, err
}

func (f *Feed) list(ctx context.Context, repo string) ([]releaseResponse, error) {
	url := fmt.Sprintf("%s/repos/%s/releases?per_page=%d", f.baseURL, repo, releasesPerPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, domain.WrapKind(domain.ErrReleaseQueryFailed, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(domain.WrapKind(domain.ErrReleaseQueryFailed, err), "repository", repo)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.Wrap(domain.ErrReleaseQueryFailed, "unexpected status "+resp.Status)
		apiErr = zerr.With(apiErr, "status_code", resp.StatusCode)
		return nil, zerr.With(apiErr, "repository", repo)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.WrapKind(domain.ErrReleaseQueryFailed, err)
	}

	var releases []releaseResponse
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, zerr.With(domain.WrapKind(domain.ErrReleaseParseFailed, err), "repository", repo)
	}
	return releases, nil
}

func toDomain(rel *releaseResponse) *domain.Release {
	assets := make([]domain.ReleaseAsset, 0, len(rel.Assets))
	for _, a := range rel.Assets {
		assets = append(assets, domain.ReleaseAsset{
			Name:        a.Name,
			DownloadURL: a.BrowserDownloadURL,
			Size:        a.Size,
			Digest:      a.Digest,
		})
	}
	return &domain.Release{
		TagName:     rel.TagName,
		Name:        rel.Name,
		Prerelease:  rel.Prerelease,
		Draft:       rel.Draft,
		PublishedAt: rel.PublishedAt,
		Assets:      assets,
	}
}
