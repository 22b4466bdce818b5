// Package api exposes the HTTP surface: schedule lookup for trainees,
// roster upload and store administration behind a shared-secret gate,
// and the best-effort AI schedule analysis.
package api

import (
	"github.com/gin-gonic/gin"

	"jadwal/internal/analyzer"
	"jadwal/internal/importer"
	"jadwal/internal/store"
)

// Handler API handlers and their collaborators.
type Handler struct {
	store       *store.Store
	coordinator *importer.Coordinator
	uploadLog   *store.UploadLog
	analyzer    analyzer.Analyzer
	sessions    *sessionStore
}

// NewHandler creates the API handler. uploadLog may be nil.
func NewHandler(s *store.Store, c *importer.Coordinator, log *store.UploadLog, a analyzer.Analyzer, adminPassword string) *Handler {
	return &Handler{
		store:       s,
		coordinator: c,
		uploadLog:   log,
		analyzer:    a,
		sessions:    newSessionStore(adminPassword),
	}
}

// RegisterRoutes registers all API routes on the given group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Public: schedule lookup and analysis
	router.GET("/data", h.GetData)
	router.GET("/schedules/:traineeId", h.GetSchedule)
	router.POST("/analyze", h.Analyze)

	// Admin gate
	router.POST("/admin/login", h.AdminLogin)

	// Admin: upload, reset, status
	admin := router.Group("", h.requireAdmin)
	admin.POST("/upload", h.Upload)
	admin.DELETE("/data", h.ResetData)
	admin.GET("/status", h.GetStatus)
}
