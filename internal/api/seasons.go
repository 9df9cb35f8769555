package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/season"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/store"
)

// SeasonEntry merges stored row counts with derived calendar info.
type SeasonEntry struct {
	store.SeasonStat
	Info *season.Info `json:"info,omitempty"`
}

// ListSeasons lists every season with data, newest first, each with its
// calendar info when the stored code is valid.
// GET /api/seasons
func (h *Handler) ListSeasons(c *gin.Context) {
	stats, err := h.store.ListSeasons()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	entries := make([]SeasonEntry, 0, len(stats))
	for _, st := range stats {
		entry := SeasonEntry{SeasonStat: st}
		if info, ok := season.InfoOf(st.Season, now); ok {
			entry.Info = &info
		}
		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{"seasons": entries})
}

// GetSeason returns calendar info for one season code at an optional
// reference date (?at=YYYY-MM-DD, default today).
// GET /api/seasons/:code
func (h *Handler) GetSeason(c *gin.Context) {
	ref := time.Now()
	if at := c.Query("at"); at != "" {
		parsed, err := time.Parse("2006-01-02", at)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reference date, want YYYY-MM-DD"})
			return
		}
		ref = parsed
	}

	info, ok := season.InfoOf(c.Param("code"), ref)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid season code"})
		return
	}

	c.JSON(http.StatusOK, info)
}

// CurrentSeason returns the season whose shipping window contains today.
// GET /api/seasons/current
func (h *Handler) CurrentSeason(c *gin.Context) {
	now := time.Now()
	code := season.CurrentShipping(now)
	info, _ := season.InfoOf(code.String(), now)
	c.JSON(http.StatusOK, info)
}
