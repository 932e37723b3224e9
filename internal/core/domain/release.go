package domain

import "time"

// ReleaseRepository is the GitHub repository publishing Cangjie toolchain releases.
const ReleaseRepository = "cangjie-lang/cangjie"

// Release is a published toolchain release.
type Release struct {
	TagName     string
	Name        string
	Prerelease  bool
	Draft       bool
	PublishedAt time.Time
	Assets      []ReleaseAsset
}

// ReleaseAsset is a downloadable file attached to a release.
type ReleaseAsset struct {
	Name        string
	DownloadURL string
	Size        int64
	// Digest is the published content digest, e.g. "sha256:<hex>". Empty when unknown.
	Digest string
}

// FindAsset returns the asset whose name equals name exactly.
func (r *Release) FindAsset(name string) (ReleaseAsset, bool) {
	for _, a := range r.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return ReleaseAsset{}, false
}

// UpdateReport is the outcome of an update check.
type UpdateReport struct {
	// Checked is false when the check was skipped by the throttle.
	Checked          bool
	LatestTag        string
	InstalledVersion string
	UpdateAvailable  bool
	CheckedAt        time.Time
}
