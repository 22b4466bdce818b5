package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal/internal/model"
)

// Analyze runs the AI study-load analysis over a schedule. Always
// answers 200: when the AI call cannot be made the fixed fallback
// report is returned instead.
// POST /api/analyze
func (h *Handler) Analyze(c *gin.Context) {
	var schedule model.TraineeSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule body"})
		return
	}

	c.JSON(http.StatusOK, h.analyzer.Analyze(c.Request.Context(), &schedule))
}
