package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/filebrowser/api/src/config"
	"github.com/filebrowser/api/src/drivers/storage"
	"github.com/filebrowser/api/src/handlers/files"
	"github.com/filebrowser/api/src/middleware"
	"github.com/filebrowser/api/src/scheduler"
	"github.com/filebrowser/api/src/services/content"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Server holds all dependencies for the API server
type Server struct {
	cfg    *config.Config
	logger *logrus.Logger
	router *gin.Engine
	fs     afero.Fs

	// Background work (rate limiter cleanup) stops with this context
	ctx    context.Context
	cancel context.CancelFunc

	// Storage & Services
	store       *storage.LocalStore
	fileService *content.FileStore
	monitor     *scheduler.StoreMonitor
	rateLimiter *middleware.RateLimiter

	// Route Handlers
	filesHandler *files.Handler
}

// Option customizes server construction
type Option func(*Server)

// WithFilesystem replaces the OS filesystem, e.g. with afero.NewMemMapFs() in tests
func WithFilesystem(fs afero.Fs) Option {
	return func(s *Server) {
		s.fs = fs
	}
}

// NewServer creates and initializes all server dependencies
func NewServer(cfg *config.Config, logger *logrus.Logger, opts ...Option) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:    cfg,
		logger: logger,
		fs:     afero.NewOsFs(),
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.initStorage(); err != nil {
		cancel()
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	s.initServices()
	s.initHandlers()
	s.initRouter()
	s.SetupRoutes()

	return s, nil
}

// initStorage prepares the flat store directory
func (s *Server) initStorage() error {
	store, err := storage.NewLocalStore(s.fs, s.cfg.Storage.BasePath)
	if err != nil {
		return err
	}
	s.store = store

	s.logger.WithFields(logrus.Fields{
		"base_path":     store.BasePath(),
		"max_file_size": s.cfg.Storage.MaxFileSize,
	}).Info("Storage initialized")
	return nil
}

// initServices initializes all business logic services
func (s *Server) initServices() {
	s.fileService = content.NewFileStore(s.store, s.cfg.Storage.MaxFileSize, s.logger)
	s.monitor = scheduler.NewStoreMonitor(s.fileService, s.cfg, s.logger)
}

// initHandlers initializes route handlers
func (s *Server) initHandlers() {
	s.filesHandler = files.NewHandler(s.fileService, s.logger)
}

func (s *Server) initRouter() {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()
	// Encoded separators in a name reach the store, which reduces them to a basename
	s.router.UseRawPath = true
	// Client IP is the socket peer; no proxy headers are trusted
	_ = s.router.SetTrustedProxies(nil)

	// Middleware chain (Onion Principle)
	s.rateLimiter = middleware.NewRateLimiter(s.ctx, s.cfg)
	s.router.Use(
		middleware.PanicRecovery(s.logger),
		middleware.RequestID(),
		middleware.CORS(s.cfg, s.logger),
		s.rateLimiter.Middleware(),
		middleware.AuditLogger(s.logger),
	)
}

// Handler exposes the configured router
func (s *Server) Handler() http.Handler {
	return s.router
}

// startBackgroundWorkers starts the store monitor when enabled
func (s *Server) startBackgroundWorkers() {
	if !s.cfg.Monitor.Enabled {
		s.logger.Info("Store monitor disabled")
		return
	}
	if err := s.monitor.Start(); err != nil {
		s.logger.WithError(err).Error("Failed to start store monitor")
	}
}

// Run starts the HTTP server and blocks until ctx ends or SIGINT/SIGTERM arrives
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:           net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Server.Port)),
		Handler:        s.router,
		ReadTimeout:    600 * time.Second,
		WriteTimeout:   600 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	s.startBackgroundWorkers()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.WithField("port", s.cfg.Server.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			s.Close()
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.WithError(err).Error("Server forced to shutdown")
		s.Close()
		return err
	}

	s.Close()
	s.logger.Info("Server exited")
	return nil
}

// Close stops background workers
func (s *Server) Close() {
	<-s.monitor.Stop().Done()
	s.cancel()
}
