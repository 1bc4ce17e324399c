package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/pkg/fsutil"
)

func writeTemp(t *testing.T, name, content string, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	return path
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")

	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("hello"), 0))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteAtomicCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "doc.md")
	err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "doc.md", "before", 0600)

	content, snap, err := fsutil.ReadSnapshot(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "before", string(content))

	written, err := fsutil.Update(context.Background(), snap, []byte("before"))
	require.NoError(t, err)
	assert.False(t, written, "identical content is not written")

	written, err = fsutil.Update(context.Background(), snap, []byte("after"))
	require.NoError(t, err)
	assert.True(t, written)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "after", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "mode is preserved")
}

func TestUpdateDetectsModification(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "doc.md", "one", 0644)

	_, snap, err := fsutil.ReadSnapshot(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0644))

	_, err = fsutil.Update(context.Background(), snap, []byte("three"))
	require.ErrorIs(t, err, fsutil.ErrModified)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}

func TestReadSnapshotErrors(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadSnapshot(context.Background(), t.TempDir())
	require.Error(t, err)

	_, _, err = fsutil.ReadSnapshot(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "doc.md", "original", 0644)

	backup, err := fsutil.CreateBackup(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path+fsutil.BackupSuffix, backup)

	require.NoError(t, os.WriteFile(path, []byte("edited"), 0644))

	again, err := fsutil.CreateBackup(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, again, "an existing backup is kept")

	got, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
}
