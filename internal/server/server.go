// Package server wires the HTTP layer together.
package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/api"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/config"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/store"
)

// Server is the HTTP server.
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
	logger zerolog.Logger
}

// NewServer builds the server, opening the SQLite store under the
// configured data directory.
func NewServer(cfg *config.AppConfig, logger zerolog.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	st, err := store.New(filepath.Join(dataDir, "tracker.db"))
	if err != nil {
		return nil, err
	}

	apiHandler := api.NewHandler(st, logger, filepath.Join(dataDir, "exports"))

	s := &Server{
		router: gin.Default(),
		store:  st,
		api:    apiHandler,
		logger: logger,
	}

	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	// CORS for the separately served frontend.
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Run starts serving on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the server's store.
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore exposes the store for tests.
func (s *Server) GetStore() *store.Store {
	return s.store
}
