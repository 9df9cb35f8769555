package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const downloadTTL = 10 * time.Minute

// ExportRequest asks for a season report workbook.
type ExportRequest struct {
	Season string `json:"season" binding:"required"`
}

// Export generates a season report workbook and returns a download token.
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "season is required"})
		return
	}

	f, err := h.exporter.Export(req.Season, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("season_report_%s_%s.xlsx", req.Season, uuid.New().String()[:8])
	filePath := filepath.Join(h.exportDir, filename)
	if err := f.SaveAs(filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write report"})
		return
	}

	token := h.downloads.put(filePath, req.Season, downloadTTL)
	h.logger.Info().Str("season", req.Season).Str("file", filename).Msg("season report generated")

	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(downloadTTL.Seconds())})
}

// DownloadExport streams a previously generated report. Tokens are single
// use and expire.
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	dl, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or not found"})
		return
	}
	h.downloads.delete(token, true)

	c.FileAttachment(dl.filePath, fmt.Sprintf("season_report_%s.xlsx", dl.season))
	os.Remove(dl.filePath)
}

// ExportCSV streams one record kind for a season as CSV.
// GET /api/export/csv?kind=products&season=26SP
func (h *Handler) ExportCSV(c *gin.Context) {
	kind := c.Query("kind")
	seasonCode := c.Query("season")
	if kind == "" || seasonCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind and season are required"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_%s.csv"`, kind, seasonCode))

	if err := h.exporter.ExportCSV(c.Writer, kind, seasonCode, time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
}
