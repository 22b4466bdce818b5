package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal/internal/model"
	"jadwal/internal/roster"
)

// Upload ingests one roster file for one department category. The
// whole file is decoded, normalized and merged before the response is
// written; a file that cannot be decoded leaves the store untouched.
// POST /api/upload (multipart: file, deptType)
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded."})
		return
	}

	dept := model.DeptType(c.PostForm("deptType"))
	if !dept.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown deptType"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}

	result, err := h.coordinator.Ingest(data, fileHeader.Filename, dept)
	if err != nil {
		if errors.Is(err, roster.ErrMalformedWorkbook) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "couldn't read the file"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   result.Count,
		"data":    h.store.Snapshot(),
	})
}
