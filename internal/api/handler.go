// Package api implements the JSON API consumed by the tracker frontend.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/exporter"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/importer"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/store"
)

// Handler bundles the API's collaborators.
type Handler struct {
	store     *store.Store
	importer  *importer.Coordinator
	exporter  *exporter.Exporter
	logger    zerolog.Logger
	exportDir string
	downloads *exportDownloadStore
}

// NewHandler creates the API handler.
func NewHandler(st *store.Store, logger zerolog.Logger, exportDir string) *Handler {
	return &Handler{
		store:     st,
		importer:  importer.NewCoordinator(st, logger),
		exporter:  exporter.NewExporter(st),
		logger:    logger,
		exportDir: exportDir,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes wires the API routes onto the router group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	// Ingestion
	router.POST("/import", h.Import)
	router.POST("/detect", h.DetectPreview)

	// Season calendar
	router.GET("/seasons", h.ListSeasons)
	router.GET("/seasons/current", h.CurrentSeason)
	router.GET("/seasons/:code", h.GetSeason)

	// Records
	router.GET("/products", h.ListProducts)
	router.GET("/sales", h.ListSales)
	router.GET("/pricing", h.ListPricing)
	router.GET("/costs", h.ListCosts)

	// Exports
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
	router.GET("/export/csv", h.ExportCSV)
}
