package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal/internal/model"
	"jadwal/internal/store"
)

// StatusResponse admin status summary.
type StatusResponse struct {
	Initialized   bool                   `json:"initialized"`
	TotalTrainees int                    `json:"totalTrainees"`
	Stats         model.UploadStats      `json:"stats"`
	RecentUploads []store.UploadLogEntry `json:"recentUploads"`
}

// GetStatus reports store size, upload counters and recent uploads.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	snapshot := h.store.Snapshot()

	resp := StatusResponse{
		Initialized:   len(snapshot.Schedules) > 0,
		TotalTrainees: len(snapshot.Schedules),
		Stats:         snapshot.Stats,
		RecentUploads: []store.UploadLogEntry{},
	}

	if h.uploadLog != nil {
		if entries, err := h.uploadLog.Recent(10); err == nil && entries != nil {
			resp.RecentUploads = entries
		}
	}

	c.JSON(http.StatusOK, resp)
}
