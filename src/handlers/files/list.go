package files

import (
	"net/http"

	"github.com/filebrowser/api/src/services/content"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ListHandler returns the names of all stored files
// @Summary List files
// @Description Returns the names of all files in the store
// @Tags files
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "Store unavailable"
// @Router /files [get]
func ListHandler(fileService content.FileService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := fileService.List(c.Request.Context())
		if !result.IsSuccessful() {
			handleStoreError(c, statusForKind(result.Kind()), result.Err(), logger)
			return
		}

		c.JSON(http.StatusOK, result.Payload())
	}
}
