// Package api exposes the explorer core to the presentation layer over HTTP
// and websockets. The presentation layer renders whatever this surface
// produces; no probability logic lives here.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lr-explorer-server/internal/catalog"
	"github.com/lr-explorer-server/internal/domain"
	"github.com/lr-explorer-server/internal/middleware"
	"github.com/lr-explorer-server/internal/service"
)

// Server represents the HTTP server
type Server struct {
	logger   *logrus.Logger
	cfg      *domain.Config
	catalog  *catalog.Catalog
	sessions *service.SessionManager
	router   *gin.Engine
	server   *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *domain.Config, cat *catalog.Catalog, sessions *service.SessionManager, logger *logrus.Logger) *Server {
	// Set Gin mode based on environment
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))

	server := &Server{
		logger:   logger,
		cfg:      cfg,
		catalog:  cat,
		sessions: sessions,
		router:   router,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// Router returns the underlying gin engine, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.cfg.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.handleHealth)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/records", s.handleListRecords)
		v1.GET("/records/notes", s.handleStudyNotes)
		v1.GET("/catalog/summary", s.handleCatalogSummary)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", s.handleCreateSession)
			sessions.GET("/:id", s.handleGetSession)
			sessions.DELETE("/:id", s.handleDeleteSession)
			sessions.GET("/:id/stream", s.handleStream)
			sessions.PUT("/:id/query", s.handleSetQuery)
			sessions.PUT("/:id/condition", s.handleSetCondition)
			sessions.POST("/:id/sort", s.handleRequestSort)
			sessions.POST("/:id/select", s.handleSelect)
			sessions.PUT("/:id/prevalence", s.handleSetPrevalence)
			sessions.PUT("/:id/polarity", s.handleSetPolarity)
		}
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"records":   s.catalog.Len(),
		"sessions":  s.sessions.Count(),
	})
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Correlation-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
