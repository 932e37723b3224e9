package domain

import "path/filepath"

const (
	// BinDirName is the name of the SDK directory holding executables.
	BinDirName = "bin"

	// ToolsDirName is the name of the SDK directory holding auxiliary tools.
	ToolsDirName = "tools"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = ".cjtool.yaml"

	// AltConfigFileName is the visible alternative to ConfigFileName.
	AltConfigFileName = "cjtool.yaml"

	// EditorDirName is the name of the editor state directory under the user's home.
	EditorDirName = ".zed"

	// ExtensionsDirName is the name of the directory downloaded binaries are stored in.
	ExtensionsDirName = "extensions"

	// SDKHomeEnvVar is the environment variable naming the SDK root.
	SDKHomeEnvVar = "CANGJIE_HOME"

	// SDKPathKey is the configuration key naming the SDK root.
	SDKPathKey = "sdkPath"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission applied to downloaded binaries (rwxr-xr-x).
	ExecPerm = 0o755
)

// DownloadDir returns the directory downloaded binaries are installed into.
// It joins home, .zed and extensions.
func DownloadDir(home string) string {
	return filepath.Join(home, EditorDirName, ExtensionsDirName)
}

// SDKBinDir returns the bin directory of an SDK root.
func SDKBinDir(root string) string {
	return filepath.Join(root, BinDirName)
}
