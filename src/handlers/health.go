package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/filebrowser/api/src/drivers/storage"
	"github.com/filebrowser/api/src/services/content"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UsageReporter is implemented by storage backends that know their volume usage.
type UsageReporter interface {
	Usage(ctx context.Context) (*storage.UsageStats, error)
}

// MonitorStatus exposes the outcome of the last scheduled store probe.
type MonitorStatus interface {
	Healthy() bool
}

// Health godoc
// @Summary Health check endpoint
// @Description Returns API health status, store reachability and disk usage
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Health status information"
// @Failure 503 {object} map[string]interface{} "Store unavailable"
// @Router /health [get]
// monitor may be nil when scheduled probing is disabled.
func Health(fileService content.FileService, usage UsageReporter, monitor MonitorStatus, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "filebrowser-api",
		}

		if monitor != nil {
			status["last_probe"] = "ok"
			if !monitor.Healthy() {
				status["last_probe"] = "failed"
			}
		}

		listing := fileService.List(ctx)
		if !listing.IsSuccessful() {
			logger.WithField("error", listing.ErrorMessage()).Error("Store health check failed")
			status["status"] = "degraded"
			status["storage"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["storage"] = "ok"
		status["file_count"] = len(listing.Payload())

		if usage != nil {
			stats, err := usage.Usage(ctx)
			if err != nil {
				logger.WithError(err).Debug("Disk usage unavailable")
			} else {
				status["disk_total"] = stats.Total
				status["disk_used"] = stats.Used
				status["disk_free"] = stats.Free
				status["disk_used_percent"] = stats.UsedPercent
			}
		}

		c.JSON(http.StatusOK, status)
	}
}
