package importer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/model"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/store"
)

func writeWorkbook(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func drain(ch <-chan ProgressEvent) []ProgressEvent {
	var events []ProgressEvent
	for e := range ch {
		events = append(events, e)
	}
	return events
}

func lastEvent(events []ProgressEvent) ProgressEvent {
	return events[len(events)-1]
}

func TestImport_SalesWorkbook(t *testing.T) {
	path := writeWorkbook(t, "26FA SALES 1.30.26.xlsx", [][]interface{}{
		{"Revenue", "Units Current Booked", "Customer Name", "Customer Type", "Ship Date"},
		{"1200.50", "40", "REI", "Specialty", "2026-09-01"},
		{"$880.00", "22", "Scheels", "Sporting Goods", "2026-09-15"},
	})

	st := newTestStore(t)
	c := NewCoordinator(st, zerolog.Nop())

	events := drain(c.Import(Options{FilePath: path, Filename: filepath.Base(path)}))
	require.NotEmpty(t, events)
	require.Equal(t, "done", lastEvent(events).Type)

	seasonCode := "26FA"
	sales, err := st.ListSales(store.SaleQueryOptions{Season: &seasonCode})
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "REI", sales[0].CustomerName)
	assert.Equal(t, 1200.50, sales[0].Revenue)
	assert.Equal(t, 880.0, sales[1].Revenue)
	assert.Equal(t, "26FA", sales[0].Season)
	assert.NotEmpty(t, sales[0].ImportID)

	// The finished import is visible as the last import time.
	last, err := st.LastImportTime()
	require.NoError(t, err)
	assert.NotEmpty(t, last)
}

func TestImport_CostKindFollowsSeasonStatus(t *testing.T) {
	path := writeWorkbook(t, "costs export.xlsx", [][]interface{}{
		{"Style Number", "Season", "FOB Cost", "Landed Cost", "Factory"},
		{"1090", "24FA", "21.40", "26.80", "Vina Apparel"},
		{"1090", "27SP", "22.00", "27.10", "Vina Apparel"},
	})

	st := newTestStore(t)
	c := NewCoordinator(st, zerolog.Nop())

	// Mid-2026: 24FA is long closed, 27SP is still being planned.
	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	events := drain(c.Import(Options{FilePath: path, Filename: "costs export.xlsx", ReferenceDate: ref}))
	require.Equal(t, "done", lastEvent(events).Type)

	costs, err := st.ListCosts(store.CostQueryOptions{})
	require.NoError(t, err)
	require.Len(t, costs, 2)

	bySeason := map[string]model.CostKind{}
	for _, rec := range costs {
		bySeason[rec.Season] = rec.Kind
	}
	assert.Equal(t, model.CostActual, bySeason["24FA"])
	assert.Equal(t, model.CostProjected, bySeason["27SP"])
}

func TestImport_LineListSeasonFromFilename(t *testing.T) {
	path := writeWorkbook(t, "SPRING 2027 Line List.xlsx", [][]interface{}{
		{"Style #", "Style Desc", "MSRP", "Wholesale", "Category", "Division"},
		{"1090", "RENEGADE PANT", "99", "49.50", "Pants", "Mens"},
		{"", "missing style", "0", "0", "Pants", "Mens"},
	})

	st := newTestStore(t)
	c := NewCoordinator(st, zerolog.Nop())

	events := drain(c.Import(Options{FilePath: path, Filename: "SPRING 2027 Line List.xlsx"}))
	last := lastEvent(events)
	require.Equal(t, "done", last.Type)

	seasonCode := "27SP"
	products, err := st.ListProducts(store.ProductQueryOptions{Season: &seasonCode})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "1090", products[0].StyleNumber)
	assert.Equal(t, "SPRING 2027 Line List.xlsx", products[0].SourceFile)

	report, ok := last.Data.(*model.ImportReport)
	require.True(t, ok)
	assert.Equal(t, 2, report.TotalRows)
	assert.Equal(t, 1, report.ImportedRows)
	assert.Equal(t, 1, report.ErrorRows)
}

func TestImport_UnknownFileIsRejected(t *testing.T) {
	path := writeWorkbook(t, "mystery.xlsx", [][]interface{}{
		{"Alpha", "Beta", "Gamma"},
		{"1", "2", "3"},
	})

	st := newTestStore(t)
	c := NewCoordinator(st, zerolog.Nop())

	events := drain(c.Import(Options{FilePath: path, Filename: "mystery.xlsx"}))
	assert.Equal(t, "error", lastEvent(events).Type)

	n, err := st.CountProducts(store.ProductQueryOptions{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImport_ClearExistingReplacesSeason(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.BatchInsertPricing([]*model.PricingRecord{
		{StyleNumber: "9999", Season: "26SP", Price: 1, Currency: "USD"},
	}))

	path := writeWorkbook(t, "26SP pricing.xlsx", [][]interface{}{
		{"Style", "Color", "Season", "Sea Desc", "Price", "MSRP"},
		{"1090", "Khaki", "26SP", "Spring 2026", "49.50", "99"},
	})

	c := NewCoordinator(st, zerolog.Nop())
	events := drain(c.Import(Options{FilePath: path, Filename: "26SP pricing.xlsx", ClearExisting: true}))
	require.Equal(t, "done", lastEvent(events).Type)

	seasonCode := "26SP"
	pricing, err := st.ListPricing(store.PricingQueryOptions{Season: &seasonCode})
	require.NoError(t, err)
	require.Len(t, pricing, 1)
	assert.Equal(t, "1090", pricing[0].StyleNumber)
}
