package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal/internal/store"
)

// GetSchedule looks up one trainee's schedule by id (exact match on
// the trimmed id).
// GET /api/schedules/:traineeId
func (h *Handler) GetSchedule(c *gin.Context) {
	schedule, err := h.store.Lookup(c.Param("traineeId"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "trainee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}
