package files

import (
	"net/http"

	"github.com/filebrowser/api/src/domain/files"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// statusForKind maps a read or list failure onto an HTTP status
func statusForKind(kind files.ErrorKind) int {
	switch kind {
	case files.KindNotFound:
		return http.StatusNotFound
	case files.KindStoreUnavailable:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// handleStoreError logs a failed store operation and answers with its
// message as plain text.
func handleStoreError(c *gin.Context, status int, err error, logger *logrus.Logger) {
	entry := logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"name":       c.Param("name"),
		"kind":       files.KindOf(err),
		"status":     status,
		"error":      err.Error(),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("files: request failed")
	} else {
		entry.Warn("files: request failed")
	}

	c.String(status, err.Error())
}
