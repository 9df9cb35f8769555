package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/season"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/store"
)

// StatusResponse is the system status payload.
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`
	CurrentSeason  string `json:"currentSeason"`
	SeasonLabel    string `json:"seasonLabel"`
	ProductCount   int    `json:"productCount"`
	SaleCount      int    `json:"saleCount"`
	PricingCount   int    `json:"pricingCount"`
	CostCount      int    `json:"costCount"`
	LastImportTime string `json:"lastImportTime"`
}

// GetStatus reports overall system state.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	current := season.CurrentShipping(time.Now())

	products, err := h.store.CountProducts(store.ProductQueryOptions{})
	if err != nil {
		products = 0
	}
	sales, err := h.store.CountSales(store.SaleQueryOptions{})
	if err != nil {
		sales = 0
	}
	pricing, err := h.store.CountPricing(store.PricingQueryOptions{})
	if err != nil {
		pricing = 0
	}
	costs, err := h.store.CountCosts(store.CostQueryOptions{})
	if err != nil {
		costs = 0
	}

	lastImport, err := h.store.LastImportTime()
	if err != nil {
		lastImport = ""
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    products+sales+pricing+costs > 0,
		CurrentSeason:  current.String(),
		SeasonLabel:    current.Label(),
		ProductCount:   products,
		SaleCount:      sales,
		PricingCount:   pricing,
		CostCount:      costs,
		LastImportTime: lastImport,
	})
}
