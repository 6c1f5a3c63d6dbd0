package main

import (
	"context"
	"flag"
	"os"

	"github.com/filebrowser/api/src/config"
	"github.com/filebrowser/api/src/server"
	"github.com/sirupsen/logrus"
)

// @title File Browser API
// @version 1.0
// @description Flat file store: list, download and upload files.

// @BasePath /

func main() {
	configPath := flag.String("config", os.Getenv("FILEBROWSER_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := server.NewLogger(cfg)

	logger.WithFields(logrus.Fields{
		"port":          cfg.Server.Port,
		"environment":   cfg.Server.Environment,
		"log_level":     cfg.Logging.Level,
		"base_path":     cfg.Storage.BasePath,
		"max_file_size": cfg.Storage.MaxFileSize,
		"cors_origins":  cfg.CORS.Origins,
		"rate_limit":    cfg.RateLimit.PerMin,
	}).Info("Starting file browser API server")

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize server")
	}

	if err := srv.Run(context.Background()); err != nil {
		logger.WithError(err).Fatal("Server stopped with error")
	}
}
