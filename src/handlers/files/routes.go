package files

import (
	"github.com/filebrowser/api/src/services/content"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler holds dependencies for files handlers
type Handler struct {
	fileService content.FileService
	logger      *logrus.Logger
}

// NewHandler creates a new Files Handler
func NewHandler(fileService content.FileService, logger *logrus.Logger) *Handler {
	return &Handler{
		fileService: fileService,
		logger:      logger,
	}
}

// RegisterRoutes registers the flat file store routes
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/files", ListHandler(h.fileService, h.logger))
	rg.POST("/files", UploadHandler(h.fileService, h.logger))
	rg.GET("/files/:name", EnvelopeHandler(h.fileService, h.logger))
	rg.GET("/files/raw/:name", RawDownloadHandler(h.fileService, h.logger))
}
