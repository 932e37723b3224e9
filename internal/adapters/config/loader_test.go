package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cjtool/internal/adapters/config"
	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newQuietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return mockLogger
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, `
sdkPath: sdk
tools:
  cjc:
    pathOverride: ./toolchain/cjc
  cangjie-lsp:
    arguments: ["--stdio", "--log"]
`)
	nested := filepath.Join(root, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	loader := config.NewLoader(newQuietLogger(t))

	settings, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "sdk"), settings.SDKPath)
	assert.Equal(t, root, settings.BaseDir)
	assert.Equal(t, filepath.Join(root, domain.ConfigFileName), settings.Source)
	assert.Equal(t, "./toolchain/cjc", settings.PathOverride("cjc"))
	assert.Equal(t, []string{"--stdio", "--log"}, settings.Tool("cangjie-lsp").Arguments)
	assert.Nil(t, settings.Tool("cjc").Arguments)
}

func TestLoader_Load_AltName(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.AltConfigFileName, "sdkPath: /opt/cangjie\n")

	settings, err := config.NewLoader(newQuietLogger(t)).Load(root)
	require.NoError(t, err)
	assert.Equal(t, "/opt/cangjie", settings.SDKPath)
}

func TestLoader_Load_NearestWins(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "sdkPath: /outer\n")
	inner := filepath.Join(root, "inner")
	require.NoError(t, os.Mkdir(inner, domain.DirPerm))
	createFile(t, inner, domain.ConfigFileName, "sdkPath: /inner\n")

	settings, err := config.NewLoader(newQuietLogger(t)).Load(inner)
	require.NoError(t, err)
	assert.Equal(t, "/inner", settings.SDKPath)
	assert.Equal(t, inner, settings.BaseDir)
}

func TestLoader_Load_MissingFileYieldsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"project/main.cj": {Data: []byte("main(): Int64 { 0 }")},
	}
	root := string(filepath.Separator) + "work"
	loader := config.NewLoaderWithFS(newQuietLogger(t), config.NewMapFSAdapter(root, fsys))

	cwd := filepath.Join(root, "project")
	settings, err := loader.Load(cwd)
	require.NoError(t, err)

	assert.Empty(t, settings.SDKPath)
	assert.Empty(t, settings.Tools)
	assert.Empty(t, settings.Source)
	assert.Equal(t, cwd, settings.BaseDir)
}

func TestLoader_Load_MapFS(t *testing.T) {
	fsys := fstest.MapFS{
		".cjtool.yaml":    {Data: []byte("sdkPath: /opt/cangjie\n")},
		"project/main.cj": {Data: []byte("")},
	}
	root := string(filepath.Separator) + "work"
	loader := config.NewLoaderWithFS(newQuietLogger(t), config.NewMapFSAdapter(root, fsys))

	settings, err := loader.Load(filepath.Join(root, "project"))
	require.NoError(t, err)
	assert.Equal(t, "/opt/cangjie", settings.SDKPath)
	assert.Equal(t, root, settings.BaseDir)
}

func TestLoader_UnknownToolWarns(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, `
tools:
  cjpm:
    pathOverride: /usr/bin/cjpm
`)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	settings, err := config.NewLoader(mockLogger).Load(root)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/cjpm", settings.PathOverride("cjpm"))
}

func TestLoader_Errors(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		root := t.TempDir()
		createFile(t, root, domain.ConfigFileName, "tools: [unclosed\n")

		_, err := config.NewLoader(newQuietLogger(t)).Load(root)
		require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	t.Run("wrong shape", func(t *testing.T) {
		root := t.TempDir()
		createFile(t, root, domain.ConfigFileName, "tools: not-a-map\n")

		_, err := config.NewLoader(newQuietLogger(t)).Load(root)
		require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	t.Run("explicit file missing", func(t *testing.T) {
		_, err := config.NewLoader(newQuietLogger(t)).LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, domain.ErrConfigReadFailed)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoader_LoadFile(t *testing.T) {
	root := t.TempDir()
	path := createFile(t, root, "custom.yaml", "sdkPath: ../sdk\n")

	settings, err := config.NewLoader(newQuietLogger(t)).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(root), "sdk"), settings.SDKPath)
	assert.Equal(t, path, settings.Source)
}
