package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/lr-explorer-server/internal/api"
	"github.com/lr-explorer-server/internal/catalog"
	"github.com/lr-explorer-server/internal/config"
	"github.com/lr-explorer-server/internal/service"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := newLogger(cfg.Logging.Level, cfg.Logging.Format)

	// Build the compiled-in catalog
	cat, err := catalog.New(logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build test catalog")
	}

	// Wire services
	views, err := service.NewViewEngine(cat, cfg.Cache.ViewCacheSize, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create view engine")
	}
	sessions := service.NewSessionManager(views, cfg.Explorer, logger)
	defer sessions.Close()

	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting likelihood-ratio explorer server")

	// Create server
	server := api.NewServer(cfg, cat, sessions, logger)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	// Start server
	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}

// newLogger configures logrus from the logging config.
func newLogger(level, format string) *logrus.Logger {
	logger := logrus.New()

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
