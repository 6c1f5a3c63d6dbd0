package files

import (
	"errors"
	"net/http"

	"github.com/filebrowser/api/src/domain/files"
	"github.com/filebrowser/api/src/services/content"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// UploadField is the multipart field carrying the file
	UploadField = "files"

	// multipartOverhead covers boundaries and part headers on top of the file itself
	multipartOverhead = 64 << 10

	msgNoFileAttached = "No file is attached. The parameter name must be 'files'"
	msgSingleFileOnly = "Currently only one file is accepted for uploading"
)

// UploadHandler stores exactly one uploaded file
// @Summary Upload a file
// @Description Stores one file sent as multipart field "files". Existing names are never overwritten.
// @Tags files
// @Accept multipart/form-data
// @Param files formData file true "File to upload"
// @Success 200
// @Failure 400 {string} string "Validation or store failure"
// @Router /files [post]
func UploadHandler(fileService content.FileService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString("request_id")
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, content.ReadLimit(fileService.MaxFileSize(), multipartOverhead))

		form, err := c.MultipartForm()
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				handleStoreError(c, http.StatusBadRequest, files.ErrTooLarge, logger)
				return
			}
			logger.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("files: unreadable upload body")
			c.String(http.StatusBadRequest, msgNoFileAttached)
			return
		}

		parts := form.File[UploadField]
		switch {
		case len(parts) == 0:
			c.String(http.StatusBadRequest, msgNoFileAttached)
			return
		case len(parts) > 1:
			c.String(http.StatusBadRequest, msgSingleFileOnly)
			return
		}

		header := parts[0]
		file, err := header.Open()
		if err != nil {
			handleStoreError(c, http.StatusBadRequest, err, logger)
			return
		}
		defer file.Close()

		result := fileService.Write(c.Request.Context(), file, header.Filename, header.Size)
		if !result.IsSuccessful() {
			handleStoreError(c, http.StatusBadRequest, result.Err(), logger)
			return
		}

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       header.Filename,
			"size":       header.Size,
		}).Info("files: upload stored")

		c.Status(http.StatusOK)
	}
}
