package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/filebrowser/api/src/domain/files"
	"github.com/filebrowser/api/src/drivers/storage"
	"github.com/sirupsen/logrus"
)

// FileStore serves a single flat directory: list, read and exclusive write.
// It holds no per-request state and is safe for concurrent use.
type FileStore struct {
	store       storage.StorageProvider
	maxFileSize int64
	logger      *logrus.Logger
}

// NewFileStore creates a new file store.
func NewFileStore(store storage.StorageProvider, maxFileSize int64, logger *logrus.Logger) *FileStore {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &FileStore{
		store:       store,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// MaxFileSize returns the upload limit in bytes
func (s *FileStore) MaxFileSize() int64 {
	return s.maxFileSize
}

// List returns the names of all regular files in the base directory.
// Directories, symlinks and special files are skipped.
func (s *FileStore) List(ctx context.Context) files.Result[[]string] {
	entries, err := s.store.List(ctx)
	if err != nil {
		return files.Failure[[]string](unavailable(err))
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsRegular() {
			continue
		}
		names = append(names, entry.Name)
	}
	return files.Success(names)
}

// Read loads a file by the basename of requestedName.
func (s *FileStore) Read(ctx context.Context, requestedName string) files.Result[files.FileRecord] {
	name, err := files.Basename(requestedName)
	if err != nil {
		return files.Failure[files.FileRecord](err)
	}

	entry, err := s.store.Stat(ctx, name)
	if err != nil {
		return files.Failure[files.FileRecord](classifyReadError(err))
	}
	if !entry.IsRegular() {
		return files.Failure[files.FileRecord](files.ErrNotFound)
	}

	reader, err := s.store.Open(ctx, name)
	if err != nil {
		return files.Failure[files.FileRecord](classifyReadError(err))
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return files.Failure[files.FileRecord](unavailable(err))
	}

	return files.Success(files.FileRecord{
		Name:        name,
		Content:     content,
		ContentType: files.ContentTypeFor(name),
	})
}

// ReadAsEnvelope reads a file and base64-encodes it for JSON transport.
func (s *FileStore) ReadAsEnvelope(ctx context.Context, requestedName string) files.Result[files.Envelope] {
	record, err := s.Read(ctx, requestedName).Get()
	if err != nil {
		return files.Failure[files.Envelope](err)
	}
	return files.Success(files.EncodeEnvelope(record))
}

// Write stores content under the basename of requestedName.
// Checks run in order: name, declared size, existing name. Creation is
// exclusive, so of two concurrent writers of one name exactly one wins.
func (s *FileStore) Write(ctx context.Context, content io.Reader, requestedName string, sizeBytes int64) files.Result[struct{}] {
	name, err := files.Basename(requestedName)
	if err != nil {
		return files.Failure[struct{}](err)
	}

	if err := ValidateFileSize(sizeBytes, s.maxFileSize); err != nil {
		LogValidationFailure(s.logger, name, sizeBytes, err)
		return files.Failure[struct{}](files.ErrTooLarge)
	}

	writer, err := s.store.CreateExclusive(ctx, name)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return files.Failure[struct{}](files.ErrAlreadyExists)
		}
		return files.Failure[struct{}](unavailable(err))
	}

	// One byte past the limit is enough to detect an oversize body
	written, copyErr := io.Copy(writer, io.LimitReader(content, ReadLimit(s.maxFileSize, 1)))
	closeErr := writer.Close()

	switch {
	case copyErr != nil:
		s.discard(ctx, name)
		return files.Failure[struct{}](unavailable(copyErr))
	case closeErr != nil:
		s.discard(ctx, name)
		return files.Failure[struct{}](unavailable(closeErr))
	case written > s.maxFileSize:
		s.discard(ctx, name)
		LogValidationFailure(s.logger, name, written, files.ErrTooLarge)
		return files.Failure[struct{}](files.ErrTooLarge)
	}

	s.logger.WithFields(logrus.Fields{
		"name": name,
		"size": written,
	}).Info("File stored")

	return files.Success(struct{}{})
}

// discard removes a partially written file
func (s *FileStore) discard(ctx context.Context, name string) {
	if err := s.store.Remove(context.WithoutCancel(ctx), name); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.WithError(err).WithField("name", name).Warn("Failed to remove partial file")
	}
}

func classifyReadError(err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return files.ErrNotFound
	}
	return unavailable(err)
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", files.ErrStoreUnavailable, err)
}
