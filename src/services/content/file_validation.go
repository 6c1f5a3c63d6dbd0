package content

import (
	"fmt"
	"math"

	"github.com/filebrowser/api/src/domain/files"
	"github.com/sirupsen/logrus"
)

// DefaultMaxFileSize applies when no limit is configured
const DefaultMaxFileSize = 10 * 1024 * 1024 // 10 MB

// ValidateFileSize rejects declared sizes strictly above the limit
func ValidateFileSize(size, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("%w: file size %d bytes exceeds maximum of %d bytes", files.ErrTooLarge, size, maxSize)
	}
	return nil
}

// ReadLimit returns maxSize+slack, saturating at math.MaxInt64
func ReadLimit(maxSize, slack int64) int64 {
	if maxSize > math.MaxInt64-slack {
		return math.MaxInt64
	}
	return maxSize + slack
}

func LogValidationFailure(logger *logrus.Logger, filename string, size int64, err error) {
	logger.WithFields(logrus.Fields{
		"filename": filename,
		"size":     size,
		"error":    err.Error(),
	}).Warn("File validation failed")
}
