package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T) (*LocalStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := NewLocalStore(fs, "/srv/files")
	require.NoError(t, err)
	return store, fs
}

func TestNewLocalStore_CreatesBaseDir(t *testing.T) {
	store, fs := newMemStore(t)

	exists, err := afero.DirExists(fs, store.BasePath())
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, filepath.IsAbs(store.BasePath()))
}

func TestLocalStore_SanitizePath(t *testing.T) {
	store, _ := newMemStore(t)

	rejected := []string{"", ".", "..", "../x", "a/b", `c:\p\x`, "nul\x00byte"}
	for _, name := range rejected {
		t.Run(name, func(t *testing.T) {
			_, err := store.sanitizePath(name)
			assert.ErrorIs(t, err, ErrPathTraversal)
		})
	}

	full, err := store.sanitizePath("image.gif")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.BasePath(), "image.gif"), full)
}

func TestLocalStore_CreateExclusive(t *testing.T) {
	store, fs := newMemStore(t)
	ctx := context.Background()

	w, err := store.CreateExclusive(ctx, "report.txt")
	require.NoError(t, err)
	_, err = io.WriteString(w, "first")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = store.CreateExclusive(ctx, "report.txt")
	assert.True(t, errors.Is(err, os.ErrExist), "expected exist error, got %v", err)

	data, err := afero.ReadFile(fs, filepath.Join(store.BasePath(), "report.txt"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestLocalStore_OpenAndStat(t *testing.T) {
	store, fs := newMemStore(t)
	ctx := context.Background()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(store.BasePath(), "a.bin"), []byte{1, 2, 3}, 0o644))

	entry, err := store.Stat(ctx, "a.bin")
	require.NoError(t, err)
	assert.Equal(t, "a.bin", entry.Name)
	assert.Equal(t, int64(3), entry.Size)
	assert.False(t, entry.IsDir)
	assert.True(t, entry.IsRegular())

	r, err := store.Open(ctx, "a.bin")
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	_, err = store.Stat(ctx, "missing.bin")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLocalStore_List(t *testing.T) {
	store, fs := newMemStore(t)
	base := store.BasePath()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(base, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(base, "a.txt"), []byte("aa"), 0o644))
	require.NoError(t, fs.MkdirAll(filepath.Join(base, "nested"), 0o755))

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byName := map[string]StorageEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	assert.Equal(t, int64(2), byName["a.txt"].Size)
	assert.True(t, byName["nested"].IsDir)
	assert.False(t, byName["nested"].IsRegular())
	assert.True(t, byName["a.txt"].IsRegular())

	_, err = store.Open(context.Background(), "nested")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLocalStore_ListEmpty(t *testing.T) {
	store, _ := newMemStore(t)

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestLocalStore_Remove(t *testing.T) {
	store, fs := newMemStore(t)
	target := filepath.Join(store.BasePath(), "gone.txt")
	require.NoError(t, afero.WriteFile(fs, target, []byte("x"), 0o644))

	require.NoError(t, store.Remove(context.Background(), "gone.txt"))
	exists, _ := afero.Exists(fs, target)
	assert.False(t, exists)

	assert.ErrorIs(t, store.Remove(context.Background(), "../gone.txt"), ErrPathTraversal)
}

func TestLocalStore_CanceledContext(t *testing.T) {
	store, _ := newMemStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.Open(ctx, "a.txt")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.CreateExclusive(ctx, "a.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalStore_Usage(t *testing.T) {
	mem, _ := newMemStore(t)
	_, err := mem.Usage(context.Background())
	assert.ErrorIs(t, err, ErrUsageUnsupported)

	osStore, err := NewLocalStore(afero.NewOsFs(), t.TempDir())
	require.NoError(t, err)
	usage, err := osStore.Usage(context.Background())
	require.NoError(t, err)
	assert.Greater(t, usage.Total, uint64(0))
}
