package storage

import (
	"context"
	"io"
	"io/fs"
	"time"
)

// StorageEntry represents a single item directly under the base directory.
// Mode comes from lstat, so symlinks and special files are visible as such.
type StorageEntry struct {
	Name    string      `json:"name"`
	Size    int64       `json:"size"`
	IsDir   bool        `json:"isDir"`
	Mode    fs.FileMode `json:"mode"`
	ModTime time.Time   `json:"modTime"`
}

// IsRegular reports whether the entry is a plain file
func (e StorageEntry) IsRegular() bool {
	return e.Mode.IsRegular()
}

func entryFromInfo(info fs.FileInfo) StorageEntry {
	return StorageEntry{
		Name:    info.Name(),
		Size:    info.Size(),
		IsDir:   info.IsDir(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}
}

// UsageStats describes the volume holding the base directory
type UsageStats struct {
	Path        string  `json:"path"`
	Total       uint64  `json:"total"`
	Free        uint64  `json:"free"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"usedPercent"`
}

// StorageProvider defines the flat, single-level storage backend.
// Every name is a plain basename; anything else is rejected with ErrPathTraversal.
// Open refuses anything but a regular file with an fs.ErrNotExist error.
type StorageProvider interface {
	// Writers
	CreateExclusive(ctx context.Context, name string) (io.WriteCloser, error)
	Remove(ctx context.Context, name string) error

	// Readers
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	List(ctx context.Context) ([]StorageEntry, error)
	Stat(ctx context.Context, name string) (*StorageEntry, error)

	// Utils
	BasePath() string
	Usage(ctx context.Context) (*UsageStats, error)
}
