package ports

// PathProbe answers existence questions about filesystem paths.
// It never returns an error for a missing path; absence is reported as false.
//
//go:generate go run go.uber.org/mock/mockgen -source=path_probe.go -destination=mocks/mock_path_probe.go -package=mocks
type PathProbe interface {
	// IsFile reports whether path exists and is a regular file or a symlink.
	// Symlinks are not followed.
	IsFile(path string) bool

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool

	// Canonicalize returns the absolute path with symlinks resolved.
	Canonicalize(path string) (string, error)
}
