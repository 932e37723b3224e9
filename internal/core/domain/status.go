package domain

// InstallStatus is the progress state of a tool installation.
type InstallStatus int

const (
	// StatusNone clears any previously reported status.
	StatusNone InstallStatus = iota
	// StatusCheckingForUpdate is reported while the release feed is queried.
	StatusCheckingForUpdate
	// StatusDownloading is reported while a release asset is downloaded.
	StatusDownloading
	// StatusInstalled is reported once the binary is in place.
	StatusInstalled
	// StatusFailed is reported when provisioning failed.
	StatusFailed
)

// String returns a human readable status label.
func (s InstallStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusCheckingForUpdate:
		return "checking for update"
	case StatusDownloading:
		return "downloading"
	case StatusInstalled:
		return "installed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
