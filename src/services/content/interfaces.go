package content

import (
	"context"
	"io"

	"github.com/filebrowser/api/src/domain/files"
)

// FileService defines the flat file store operations
type FileService interface {
	List(ctx context.Context) files.Result[[]string]
	Read(ctx context.Context, requestedName string) files.Result[files.FileRecord]
	ReadAsEnvelope(ctx context.Context, requestedName string) files.Result[files.Envelope]
	Write(ctx context.Context, content io.Reader, requestedName string, sizeBytes int64) files.Result[struct{}]
	MaxFileSize() int64
}

var _ FileService = (*FileStore)(nil)
