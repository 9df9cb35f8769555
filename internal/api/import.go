package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/detect"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/importer"
)

// Import ingests an uploaded workbook, streaming progress as SSE.
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	uploadedFile := files[0]

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fmt.Sprintf("tracker_import_%d_%s", time.Now().Unix(), filepath.Base(uploadedFile.Filename)))

	if err := c.SaveUploadedFile(uploadedFile, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload"})
		return
	}
	defer os.Remove(tempFilePath)

	clearExisting := c.DefaultPostForm("clearExisting", "true") == "true"

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	progress := h.importer.Import(importer.Options{
		FilePath:      tempFilePath,
		Filename:      uploadedFile.Filename,
		ClearExisting: clearExisting,
	})

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	for event := range progress {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}

// DetectPreviewResponse pairs the classification verdict with the season
// extracted from the filename.
type DetectPreviewResponse struct {
	Detection detect.Result `json:"detection"`
	Season    string        `json:"season"`
	HasSeason bool          `json:"hasSeason"`
}

// DetectPreview classifies an uploaded workbook's header row without
// importing anything, so the operator can confirm before committing.
// POST /api/detect
func (h *Handler) DetectPreview(c *gin.Context) {
	var req struct {
		Filename string   `json:"filename"`
		Headers  []string `json:"headers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp := DetectPreviewResponse{Detection: detect.Detect(req.Headers)}
	if code, ok := detect.SeasonFromFilename(req.Filename); ok {
		resp.Season = code.String()
		resp.HasSeason = true
	}

	c.JSON(http.StatusOK, resp)
}
