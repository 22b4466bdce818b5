package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetData returns the whole database: all schedules plus upload stats.
// GET /api/data
func (h *Handler) GetData(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// ResetData clears all schedules and zeroes every counter in one swap,
// then empties the upload history.
// DELETE /api/data
func (h *Handler) ResetData(c *gin.Context) {
	if err := h.store.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset data"})
		return
	}

	if h.uploadLog != nil {
		if err := h.uploadLog.Clear(); err != nil {
			logrus.WithError(err).Warn("upload log clear failed")
		}
	}

	c.JSON(http.StatusOK, h.store.Snapshot())
}
