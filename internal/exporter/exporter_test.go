package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/model"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.BatchInsertProducts([]*model.Product{
		{StyleNumber: "1090", StyleName: "RENEGADE", Category: "Pants", Division: "Mens", Color: "Khaki", Season: "24FA", MSRP: 99, Wholesale: 49.5},
	}))
	require.NoError(t, s.BatchInsertCosts([]*model.CostRecord{
		{StyleNumber: "1090", Season: "24FA", Cost: 21.4, LandedCost: 26.8, Kind: model.CostActual, Factory: "Vina Apparel", Origin: "Vietnam"},
	}))
	return s
}

func TestExport_SeasonWorkbook(t *testing.T) {
	e := NewExporter(seededStore(t))

	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	f, err := e.Export("24FA", ref)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Season")
	assert.Contains(t, sheets, "Products")
	assert.Contains(t, sheets, "Costs")
	assert.NotContains(t, sheets, "Sales")

	label, err := f.GetCellValue("Season", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Fall 2024", label)

	status, err := f.GetCellValue("Season", "B3")
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", status)

	// A closed season reports actual costs.
	header, err := f.GetCellValue("Costs", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Actual Cost", header)
}

func TestExport_InvalidSeason(t *testing.T) {
	e := NewExporter(seededStore(t))

	_, err := e.Export("not-a-season", time.Now())
	assert.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	e := NewExporter(seededStore(t))
	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, e.ExportCSV(&buf, "products", "24fa", ref))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Style #,"))
	assert.Contains(t, lines[1], "RENEGADE")
	assert.Contains(t, lines[1], "24FA")

	assert.Error(t, e.ExportCSV(&buf, "nope", "24FA", ref))
}
