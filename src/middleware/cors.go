package middleware

import (
	"net/http"
	"strings"

	"github.com/filebrowser/api/src/config"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	corsAllowMethods  = "GET, POST, OPTIONS"
	corsAllowHeaders  = "Content-Type, Content-Length, Accept, Origin, Cache-Control, X-Requested-With, " + RequestIDHeader
	corsExposeHeaders = "Content-Disposition, Content-Length, " + RequestIDHeader
	corsMaxAge        = "86400"
)

// CORS answers cross-origin requests from whitelisted origins only.
// An empty whitelist rejects every cross-origin caller; same-origin requests
// carry no Origin header and pass untouched.
func CORS(cfg *config.Config, logger *logrus.Logger) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.CORS.Origins))
	for _, origin := range cfg.CORS.Origins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		switch {
		case origin == "":
		case isAllowed(origin, allowed):
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", allowHeadersFor(c.GetHeader("Access-Control-Request-Headers")))
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
			h.Set("Access-Control-Max-Age", corsMaxAge)
			h.Add("Vary", "Origin")
		default:
			logger.WithFields(logrus.Fields{
				"origin":     origin,
				"ip":         c.ClientIP(),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(RequestIDKey),
			}).Warn("cors: rejected origin not in whitelist")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func allowHeadersFor(requested string) string {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return corsAllowHeaders
	}
	return corsAllowHeaders + ", " + requested
}

func isAllowed(origin string, allowed map[string]struct{}) bool {
	_, ok := allowed[origin]
	return ok
}
