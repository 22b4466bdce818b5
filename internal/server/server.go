package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jadwal/internal/analyzer"
	"jadwal/internal/api"
	"jadwal/internal/config"
	"jadwal/internal/importer"
	"jadwal/internal/store"
)

// Server the HTTP server and its collaborators.
type Server struct {
	router *gin.Engine
	store  *store.Store
	log    *store.UploadLog
}

// NewServer wires the store, upload log, ingestion coordinator and API
// handlers together.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	scheduleStore, err := store.New(dataDir)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize store")
	}

	uploadLog, err := store.OpenUploadLog(dataDir)
	if err != nil {
		// History is a convenience; run without it rather than refuse to start.
		logrus.WithError(err).Warn("upload log unavailable")
		uploadLog = nil
	}

	coordinator := importer.NewCoordinator(scheduleStore, uploadLog)
	gemini := analyzer.NewGemini(cfg.Gemini.APIKey, cfg.Gemini.Model)
	handler := api.NewHandler(scheduleStore, coordinator, uploadLog, gemini, cfg.Admin.Password)

	s := &Server{
		router: gin.Default(),
		store:  scheduleStore,
		log:    uploadLog,
	}

	s.setupRoutes(handler)

	logrus.WithField("database", filepath.Join(dataDir, "database.json")).Info("store ready")
	return s
}

// setupRoutes CORS plus the API routes.
func (s *Server) setupRoutes(handler *api.Handler) {
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		handler.RegisterRoutes(apiGroup)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// Run starts listening on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// SaveNow flushes the store to disk. Called before shutdown.
func (s *Server) SaveNow() error {
	if s.log != nil {
		if err := s.log.Close(); err != nil {
			logrus.WithError(err).Warn("upload log close failed")
		}
	}
	return s.store.SaveNow()
}
