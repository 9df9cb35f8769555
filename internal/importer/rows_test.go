package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1200.5, parseAmount("1200.50"))
	assert.Equal(t, 880.0, parseAmount("$880.00"))
	assert.Equal(t, 12345.0, parseAmount("12,345"))
	assert.Equal(t, 0.0, parseAmount(""))
	assert.Equal(t, 0.0, parseAmount("n/a"))
}

func TestCoerceProducts_SeasonColumnOverridesFilename(t *testing.T) {
	t.Parallel()

	headers := []string{"Style #", "Season", "MSRP"}
	rows := [][]string{
		{"1090", "25fa", "99"},  // row season wins, normalized
		{"2044", "", "79"},      // falls back to the file season
		{"3001", "bogus", "59"}, // junk row season also falls back
	}

	records, errs := coerceProducts(headers, rows, "26SP", "line list.xlsx", "imp-1")
	require.Empty(t, errs)
	require.Len(t, records, 3)
	assert.Equal(t, "25FA", records[0].Season)
	assert.Equal(t, "26SP", records[1].Season)
	assert.Equal(t, "26SP", records[2].Season)
}

func TestCoerceSales_NoSeasonAnywhere(t *testing.T) {
	t.Parallel()

	headers := []string{"Customer Name", "Revenue"}
	rows := [][]string{{"REI", "100"}}

	records, errs := coerceSales(headers, rows, "", "sales.xlsx", "imp-1")
	assert.Empty(t, records)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "season unknown")
}
