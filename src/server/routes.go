package server

import (
	_ "github.com/filebrowser/api/docs" // swagger docs
	"github.com/filebrowser/api/src/handlers"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all HTTP routes (SRP: Routing Only)
func (s *Server) SetupRoutes() {
	var monitor handlers.MonitorStatus
	if s.cfg.Monitor.Enabled {
		monitor = s.monitor
	}
	s.router.GET("/health", handlers.Health(s.fileService, s.store, monitor, s.logger))

	// Swagger documentation (not in production)
	if !s.cfg.IsProduction() {
		s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	s.filesHandler.RegisterRoutes(s.router)
}
