package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cjtool/internal/adapters/fs"
	"go.trai.ch/cjtool/internal/core/domain"
)

func TestProbe_IsFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "cjc")
	require.NoError(t, os.WriteFile(file, []byte("bin"), domain.FilePerm))
	dir := filepath.Join(root, "bin")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))

	probe := fs.NewProbe()

	assert.True(t, probe.IsFile(file))
	assert.False(t, probe.IsFile(dir))
	assert.False(t, probe.IsFile(filepath.Join(root, "missing")))
	assert.False(t, probe.IsFile(""))
}

func TestProbe_IsFile_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
	t.Parallel()

	root := t.TempDir()
	target := filepath.Join(root, "cjc-real")
	require.NoError(t, os.WriteFile(target, []byte("bin"), domain.FilePerm))
	link := filepath.Join(root, "cjc")
	require.NoError(t, os.Symlink(target, link))
	dangling := filepath.Join(root, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), dangling))

	probe := fs.NewProbe()

	assert.True(t, probe.IsFile(link))
	assert.True(t, probe.IsFile(dangling))

	canonical, err := probe.Canonicalize(link)
	require.NoError(t, err)
	wantTarget, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, wantTarget, canonical)
}

func TestProbe_IsDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

	probe := fs.NewProbe()

	assert.True(t, probe.IsDir(root))
	assert.False(t, probe.IsDir(file))
	assert.False(t, probe.IsDir(filepath.Join(root, "missing")))
	assert.False(t, probe.IsDir(""))
}

func TestProbe_Canonicalize(t *testing.T) {
	t.Parallel()

	probe := fs.NewProbe()

	t.Run("relative path becomes absolute", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		file := filepath.Join(root, "cjc")
		require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

		got, err := probe.Canonicalize(filepath.Join(root, "bin", "..", "cjc"))
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		want, err := filepath.EvalSymlinks(file)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing path fails", func(t *testing.T) {
		t.Parallel()
		_, err := probe.Canonicalize(filepath.Join(t.TempDir(), "missing"))
		require.ErrorIs(t, err, domain.ErrCanonicalizeFailed)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
