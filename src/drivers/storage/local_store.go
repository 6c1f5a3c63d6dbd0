package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/filebrowser/api/src/domain/files"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/afero"
)

var (
	ErrPathTraversal    = errors.New("path escapes base directory")
	ErrUsageUnsupported = errors.New("disk usage not available for this filesystem")
)

// LocalStore keeps files in one directory of an afero filesystem.
// Production uses afero.NewOsFs(); tests use afero.NewMemMapFs().
type LocalStore struct {
	fs       afero.Fs
	basePath string
}

func NewLocalStore(fs afero.Fs, basePath string) (*LocalStore, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	absBase, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base path: %w", err)
	}

	if err := fs.MkdirAll(absBase, 0o755); err != nil {
		return nil, fmt.Errorf("ensure base path: %w", err)
	}

	return &LocalStore{
		fs:       fs,
		basePath: absBase,
	}, nil
}

// sanitizePath only accepts a bare basename; separators are never interpreted.
func (s *LocalStore) sanitizePath(name string) (string, error) {
	if !files.IsBasename(name) {
		return "", ErrPathTraversal
	}

	full := filepath.Join(s.basePath, name)
	if filepath.Dir(full) != s.basePath {
		return "", ErrPathTraversal
	}

	return full, nil
}

func (s *LocalStore) CreateExclusive(ctx context.Context, name string) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := s.sanitizePath(name)
	if err != nil {
		return nil, err
	}

	// O_EXCL makes the existence check and the creation one filesystem call
	return s.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

func (s *LocalStore) Remove(ctx context.Context, name string) error {
	target, err := s.sanitizePath(name)
	if err != nil {
		return err
	}
	return s.fs.Remove(target)
}

func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := s.sanitizePath(name)
	if err != nil {
		return nil, err
	}

	info, err := s.lstat(target)
	if err != nil {
		return nil, err
	}
	// Opening a FIFO would block; symlinks may point outside the base directory
	if !info.Mode().IsRegular() {
		return nil, &fs.PathError{Op: "open", Path: target, Err: fs.ErrNotExist}
	}

	return s.fs.Open(target)
}

func (s *LocalStore) List(ctx context.Context) ([]StorageEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	infos, err := afero.ReadDir(s.fs, s.basePath)
	if err != nil {
		return nil, err
	}

	items := make([]StorageEntry, 0, len(infos))
	for _, info := range infos {
		items = append(items, entryFromInfo(info))
	}

	return items, nil
}

func (s *LocalStore) Stat(ctx context.Context, name string) (*StorageEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := s.sanitizePath(name)
	if err != nil {
		return nil, err
	}

	info, err := s.lstat(target)
	if err != nil {
		return nil, err
	}

	entry := entryFromInfo(info)
	return &entry, nil
}

// lstat does not follow symlinks when the filesystem supports it
func (s *LocalStore) lstat(target string) (fs.FileInfo, error) {
	if lstater, ok := s.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(target)
		return info, err
	}
	return s.fs.Stat(target)
}

func (s *LocalStore) BasePath() string {
	return s.basePath
}

// Usage reports disk usage of the volume holding the base directory.
// Only OS-backed filesystems have a volume to inspect.
func (s *LocalStore) Usage(ctx context.Context) (*UsageStats, error) {
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return nil, ErrUsageUnsupported
	}

	usage, err := disk.UsageWithContext(ctx, s.basePath)
	if err != nil {
		return nil, fmt.Errorf("disk usage: %w", err)
	}

	return &UsageStats{
		Path:        usage.Path,
		Total:       usage.Total,
		Free:        usage.Free,
		Used:        usage.Used,
		UsedPercent: usage.UsedPercent,
	}, nil
}
