package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/model"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/store"
)

func optString(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

func paging(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "200"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListProducts lists line list rows.
// GET /api/products?season=&category=&division=&style=&limit=&offset=
func (h *Handler) ListProducts(c *gin.Context) {
	limit, offset := paging(c)
	opts := store.ProductQueryOptions{
		Season:      optString(c, "season"),
		Category:    optString(c, "category"),
		Division:    optString(c, "division"),
		StyleNumber: optString(c, "style"),
		Limit:       limit,
		Offset:      offset,
	}

	records, err := h.store.ListProducts(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := h.store.CountProducts(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": records, "total": total})
}

// ListSales lists sales rows.
// GET /api/sales?season=&customer=&customerType=&limit=&offset=
func (h *Handler) ListSales(c *gin.Context) {
	limit, offset := paging(c)
	opts := store.SaleQueryOptions{
		Season:       optString(c, "season"),
		CustomerName: optString(c, "customer"),
		CustomerType: optString(c, "customerType"),
		Limit:        limit,
		Offset:       offset,
	}

	records, err := h.store.ListSales(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := h.store.CountSales(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sales": records, "total": total})
}

// ListPricing lists pricing rows.
// GET /api/pricing?season=&style=&limit=&offset=
func (h *Handler) ListPricing(c *gin.Context) {
	limit, offset := paging(c)
	opts := store.PricingQueryOptions{
		Season:      optString(c, "season"),
		StyleNumber: optString(c, "style"),
		Limit:       limit,
		Offset:      offset,
	}

	records, err := h.store.ListPricing(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := h.store.CountPricing(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pricing": records, "total": total})
}

// ListCosts lists cost rows.
// GET /api/costs?season=&style=&kind=&limit=&offset=
func (h *Handler) ListCosts(c *gin.Context) {
	limit, offset := paging(c)
	opts := store.CostQueryOptions{
		Season:      optString(c, "season"),
		StyleNumber: optString(c, "style"),
		Limit:       limit,
		Offset:      offset,
	}
	if v := c.Query("kind"); v == string(model.CostActual) || v == string(model.CostProjected) {
		kind := model.CostKind(v)
		opts.Kind = &kind
	}

	records, err := h.store.ListCosts(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := h.store.CountCosts(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"costs": records, "total": total})
}
