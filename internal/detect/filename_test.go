package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		// Long forms.
		{"SPRING 2027 Line List.xlsx", "27SP"},
		{"Fall 2024 pricing export.xlsx", "24FA"},
		{"spring 26 costs.xlsx", "26SP"},

		// Letter-first short form.
		{"SP26 Wholesale.xlsx", "26SP"},
		{"fa25 line list v2.xlsx", "25FA"},

		// Canonical order.
		{"26FA SALES 1.30.26.xlsx", "26FA"},
		{"Costs 24SP final.xlsx", "24SP"},

		// Single-letter short form.
		{"S26 booking report.xlsx", "26SP"},
		{"F24 pricing.xlsx", "24FA"},
	}

	for _, tt := range tests {
		code, ok := SeasonFromFilename(tt.filename)
		require.True(t, ok, "SeasonFromFilename(%q)", tt.filename)
		assert.Equal(t, tt.want, code.String(), "SeasonFromFilename(%q)", tt.filename)
	}
}

func TestSeasonFromFilename_NoMatch(t *testing.T) {
	t.Parallel()

	for _, filename := range []string{
		"no season here.xlsx",
		"report.xlsx",
		"",
		// Patterns must not fire inside longer tokens.
		"TRANSPORT26 data.xlsx",
		"SOFA26 catalog.xlsx",
		"26FAB swatches.xlsx",
	} {
		_, ok := SeasonFromFilename(filename)
		assert.False(t, ok, "SeasonFromFilename(%q) should not match", filename)
	}
}

func TestSeasonFromFilename_LongFormWinsOverShort(t *testing.T) {
	t.Parallel()

	// "FALL 2026" must be read as a four-digit year, not "FALL 20".
	code, ok := SeasonFromFilename("FALL 2026 26SP leftovers.xlsx")
	require.True(t, ok)
	assert.Equal(t, "26FA", code.String())
}
