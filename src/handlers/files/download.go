package files

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/filebrowser/api/src/services/content"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// EnvelopeHandler returns a file wrapped in a base64 JSON envelope
// @Summary Get file as base64
// @Description Returns the file content base64-encoded together with its name
// @Tags files
// @Produce json
// @Param name path string true "File name"
// @Success 200 {object} files.Envelope
// @Failure 400 {string} string "Invalid file name"
// @Failure 404 {string} string "File does not exist"
// @Failure 500 {string} string "Store unavailable"
// @Router /files/{name} [get]
func EnvelopeHandler(fileService content.FileService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := fileService.ReadAsEnvelope(c.Request.Context(), c.Param("name"))
		if !result.IsSuccessful() {
			handleStoreError(c, statusForKind(result.Kind()), result.Err(), logger)
			return
		}

		c.JSON(http.StatusOK, result.Payload())
	}
}

// RawDownloadHandler streams a file as an attachment
// @Summary Download raw file
// @Description Returns the file bytes with a Content-Type inferred from the extension
// @Tags files
// @Produce octet-stream
// @Param name path string true "File name"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid file name"
// @Failure 404 {string} string "File does not exist"
// @Failure 500 {string} string "Store unavailable"
// @Router /files/raw/{name} [get]
func RawDownloadHandler(fileService content.FileService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := fileService.Read(c.Request.Context(), c.Param("name"))
		if !result.IsSuccessful() {
			handleStoreError(c, statusForKind(result.Kind()), result.Err(), logger)
			return
		}

		record := result.Payload()
		c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": record.Name}))
		c.Header("Content-Length", strconv.Itoa(len(record.Content)))
		c.Header("X-Content-Type-Options", "nosniff")
		c.Data(http.StatusOK, record.ContentType, record.Content)
	}
}
