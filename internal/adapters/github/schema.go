package github

import "time"

// releaseResponse is a release as returned by the GitHub REST API.
type releaseResponse struct {
	TagName     string          `json:"tag_name"`
	Name        string          `json:"name"`
	Draft       bool            `json:"draft"`
	Prerelease  bool            `json:"prerelease"`
	PublishedAt time.Time       `json:"published_at"`
	Assets      []assetResponse `json:"assets"`
}

type assetResponse struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
	// Digest is "<algorithm>:<hex>" and absent on older releases.
	Digest string `json:"digest"`
}
