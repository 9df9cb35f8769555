// Package exporter writes season reports: an Excel workbook with one sheet
// per record kind plus a calendar overview, and plain CSV for a single kind.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/season"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/store"
)

// Exporter builds downloadable season reports from the store.
type Exporter struct {
	store *store.Store
}

// NewExporter creates an exporter.
func NewExporter(st *store.Store) *Exporter {
	return &Exporter{store: st}
}

const dateLayout = "2006-01-02"

// costHeader picks the cost column label from the season's lifecycle:
// closed and shipping seasons report actuals, planning and pre-book
// seasons report projections.
func costHeader(status season.Status) string {
	if status.Actual() {
		return "Actual Cost"
	}
	return "Projected Cost"
}

// Export builds a season report workbook. The reference date drives status
// and cost labeling.
func (e *Exporter) Export(seasonCode string, ref time.Time) (*excelize.File, error) {
	info, ok := season.InfoOf(seasonCode, ref)
	if !ok {
		return nil, fmt.Errorf("invalid season code: %q", seasonCode)
	}

	f := excelize.NewFile()
	if err := e.fillOverviewSheet(f, info); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := e.fillRecordSheets(f, info); err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

func (e *Exporter) fillOverviewSheet(f *excelize.File, info season.Info) error {
	const sheet = "Season"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename overview sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Season", info.Code},
		{"Label", info.Label},
		{"Status", string(info.Status)},
		{"Pre-Book Start", info.PreBookStart.Format(dateLayout)},
		{"Ship Start", info.ShipStart.Format(dateLayout)},
		{"Ship End", info.ShipEnd.Format(dateLayout)},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return fmt.Errorf("failed to write overview row: %w", err)
		}
	}
	return nil
}

func (e *Exporter) fillRecordSheets(f *excelize.File, info season.Info) error {
	code := info.Code

	products, err := e.store.ListProducts(store.ProductQueryOptions{Season: &code})
	if err != nil {
		return fmt.Errorf("failed to read products: %w", err)
	}
	if len(products) > 0 {
		rows := [][]interface{}{{"Style #", "Style Name", "Description", "Category", "Division", "Color", "MSRP", "Wholesale"}}
		for _, p := range products {
			rows = append(rows, []interface{}{p.StyleNumber, p.StyleName, p.Description, p.Category, p.Division, p.Color, p.MSRP, p.Wholesale})
		}
		if err := writeSheet(f, "Products", rows); err != nil {
			return err
		}
	}

	sales, err := e.store.ListSales(store.SaleQueryOptions{Season: &code})
	if err != nil {
		return fmt.Errorf("failed to read sales: %w", err)
	}
	if len(sales) > 0 {
		rows := [][]interface{}{{"Customer Name", "Customer Type", "Style #", "Revenue", "Units Booked", "Units Shipped", "Ship Date"}}
		for _, s := range sales {
			rows = append(rows, []interface{}{s.CustomerName, s.CustomerType, s.StyleNumber, s.Revenue, s.UnitsBooked, s.UnitsShipped, s.ShipDate})
		}
		if err := writeSheet(f, "Sales", rows); err != nil {
			return err
		}
	}

	pricing, err := e.store.ListPricing(store.PricingQueryOptions{Season: &code})
	if err != nil {
		return fmt.Errorf("failed to read pricing: %w", err)
	}
	if len(pricing) > 0 {
		rows := [][]interface{}{{"Style #", "Color", "Price", "MSRP", "Currency"}}
		for _, p := range pricing {
			rows = append(rows, []interface{}{p.StyleNumber, p.Color, p.Price, p.MSRP, p.Currency})
		}
		if err := writeSheet(f, "Pricing", rows); err != nil {
			return err
		}
	}

	costs, err := e.store.ListCosts(store.CostQueryOptions{Season: &code})
	if err != nil {
		return fmt.Errorf("failed to read costs: %w", err)
	}
	if len(costs) > 0 {
		rows := [][]interface{}{{"Style #", costHeader(info.Status), "Landed Cost", "Factory", "Country of Origin"}}
		for _, c := range costs {
			rows = append(rows, []interface{}{c.StyleNumber, c.Cost, c.LandedCost, c.Factory, c.Origin})
		}
		if err := writeSheet(f, "Costs", rows); err != nil {
			return err
		}
	}

	return nil
}

func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cellRef, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i+1, err)
		}
	}
	return nil
}

// ExportCSV streams one record kind for a season as CSV.
func (e *Exporter) ExportCSV(w io.Writer, kind, seasonCode string, ref time.Time) error {
	info, ok := season.InfoOf(seasonCode, ref)
	if !ok {
		return fmt.Errorf("invalid season code: %q", seasonCode)
	}
	code := info.Code

	cw := csv.NewWriter(w)
	defer cw.Flush()

	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	switch kind {
	case "products":
		records, err := e.store.ListProducts(store.ProductQueryOptions{Season: &code})
		if err != nil {
			return err
		}
		if err := cw.Write([]string{"Style #", "Style Name", "Description", "Category", "Division", "Color", "Season", "MSRP", "Wholesale"}); err != nil {
			return err
		}
		for _, p := range records {
			if err := cw.Write([]string{p.StyleNumber, p.StyleName, p.Description, p.Category, p.Division, p.Color, p.Season, ff(p.MSRP), ff(p.Wholesale)}); err != nil {
				return err
			}
		}

	case "sales":
		records, err := e.store.ListSales(store.SaleQueryOptions{Season: &code})
		if err != nil {
			return err
		}
		if err := cw.Write([]string{"Customer Name", "Customer Type", "Style #", "Season", "Revenue", "Units Booked", "Units Shipped", "Ship Date"}); err != nil {
			return err
		}
		for _, s := range records {
			if err := cw.Write([]string{s.CustomerName, s.CustomerType, s.StyleNumber, s.Season, ff(s.Revenue), ff(s.UnitsBooked), ff(s.UnitsShipped), s.ShipDate}); err != nil {
				return err
			}
		}

	case "pricing":
		records, err := e.store.ListPricing(store.PricingQueryOptions{Season: &code})
		if err != nil {
			return err
		}
		if err := cw.Write([]string{"Style #", "Color", "Season", "Price", "MSRP", "Currency"}); err != nil {
			return err
		}
		for _, p := range records {
			if err := cw.Write([]string{p.StyleNumber, p.Color, p.Season, ff(p.Price), ff(p.MSRP), p.Currency}); err != nil {
				return err
			}
		}

	case "costs":
		records, err := e.store.ListCosts(store.CostQueryOptions{Season: &code})
		if err != nil {
			return err
		}
		if err := cw.Write([]string{"Style #", "Season", costHeader(info.Status), "Landed Cost", "Kind", "Factory", "Country of Origin"}); err != nil {
			return err
		}
		for _, c := range records {
			if err := cw.Write([]string{c.StyleNumber, c.Season, ff(c.Cost), ff(c.LandedCost), string(c.Kind), c.Factory, c.Origin}); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("unknown record kind: %q", kind)
	}

	return nil
}
