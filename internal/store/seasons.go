package store

import "fmt"

// SeasonStat aggregates row counts per season across all record tables.
type SeasonStat struct {
	Season       string `json:"season"`
	ProductCount int    `json:"productCount"`
	SaleCount    int    `json:"saleCount"`
	PricingCount int    `json:"pricingCount"`
	CostCount    int    `json:"costCount"`
	Total        int    `json:"totalRows"`
}

// ListSeasons lists every season present in the database with per-table
// row counts, newest code first.
func (s *Store) ListSeasons() ([]SeasonStat, error) {
	rows, err := s.db.Query(`
		WITH codes AS (
			SELECT DISTINCT season FROM products
			UNION
			SELECT DISTINCT season FROM sales
			UNION
			SELECT DISTINCT season FROM pricing
			UNION
			SELECT DISTINCT season FROM costs
		)
		SELECT
			codes.season,
			(SELECT COUNT(1) FROM products WHERE season = codes.season) AS product_count,
			(SELECT COUNT(1) FROM sales WHERE season = codes.season) AS sale_count,
			(SELECT COUNT(1) FROM pricing WHERE season = codes.season) AS pricing_count,
			(SELECT COUNT(1) FROM costs WHERE season = codes.season) AS cost_count
		FROM codes
		ORDER BY codes.season DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	defer rows.Close()

	var out []SeasonStat
	for rows.Next() {
		var it SeasonStat
		if err := rows.Scan(&it.Season, &it.ProductCount, &it.SaleCount, &it.PricingCount, &it.CostCount); err != nil {
			return nil, fmt.Errorf("failed to scan season stat: %w", err)
		}
		it.Total = it.ProductCount + it.SaleCount + it.PricingCount + it.CostCount
		out = append(out, it)
	}
	return out, rows.Err()
}

// ClearSeason removes all rows of one record kind for a season. Re-imports
// use it so the same export can be loaded twice without duplication.
func (s *Store) ClearSeason(table, seasonCode string) error {
	switch table {
	case "products", "sales", "pricing", "costs":
	default:
		return fmt.Errorf("unknown table: %s", table)
	}
	if _, err := s.db.Exec("DELETE FROM "+table+" WHERE season = ?", seasonCode); err != nil {
		return fmt.Errorf("failed to clear %s for season %s: %w", table, seasonCode, err)
	}
	return nil
}
