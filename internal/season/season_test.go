package season

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		year int
		half Half
	}{
		{"26FA", 2026, Fall},
		{"26SP", 2026, Spring},
		{"00SP", 2000, Spring},
		{"99FA", 2099, Fall},
		{"24fa", 2024, Fall},
		{"24sp", 2024, Spring},
		{" 27SP ", 2027, Spring},
	}

	for _, tt := range tests {
		c, ok := Parse(tt.in)
		require.True(t, ok, "Parse(%q)", tt.in)
		assert.Equal(t, tt.year, c.Year)
		assert.Equal(t, tt.half, c.Half)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"FA26",
		"2026FA",
		"026FA",
		"26WI",
		"26F",
		"26",
		"SP",
		"26FAX",
		"X26FA",
		"Spring 2026",
		"26-FA",
	}

	for _, in := range invalid {
		_, ok := Parse(in)
		assert.False(t, ok, "Parse(%q) should fail", in)
	}
}

func TestParse_RoundTripsCanonicalForm(t *testing.T) {
	t.Parallel()

	for yy := 0; yy < 100; yy++ {
		for _, half := range []Half{Spring, Fall} {
			want := Code{Year: 2000 + yy, Half: half}
			got, ok := Parse(want.String())
			require.True(t, ok, "Parse(%q)", want.String())
			assert.Equal(t, want, got)
		}
	}
}

func TestShipWindow(t *testing.T) {
	t.Parallel()

	sp, ok := Parse("24SP")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), sp.ShipStart())
	assert.Equal(t, time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC), sp.ShipEnd())
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), sp.PreBookStart())

	fa, ok := Parse("24FA")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC), fa.ShipStart())
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), fa.PreBookStart())

	// Fall shipping closes in the calendar year after it opens.
	assert.Equal(t, time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), fa.ShipEnd())
	assert.Equal(t, fa.ShipStart().Year()+1, fa.ShipEnd().Year())
}

func TestStatusAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		ref  time.Time
		want Status
	}{
		{"26SP", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), StatusPreBook},
		{"26SP", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), StatusShipping},
		{"26SP", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), StatusClosed},
		{"26SP", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), StatusPlanning},

		// Boundary days.
		{"26SP", time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), StatusShipping},
		{"26SP", time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), StatusPreBook},
		{"26SP", time.Date(2026, 8, 14, 23, 30, 0, 0, time.UTC), StatusShipping},
		{"26SP", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), StatusClosed},
		{"26SP", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), StatusPreBook},
		{"26SP", time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), StatusPlanning},

		// Fall window crossing the year boundary.
		{"24FA", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), StatusShipping},
		{"24FA", time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), StatusShipping},
		{"24FA", time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), StatusClosed},
		{"24FA", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), StatusPreBook},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.code, tt.ref),
			"StatusOf(%q, %s)", tt.code, tt.ref.Format("2006-01-02"))
	}
}

func TestStatusOf_UnparseableIsClosed(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusClosed, StatusOf("", ref))
	assert.Equal(t, StatusClosed, StatusOf("garbage", ref))
	assert.Equal(t, StatusClosed, StatusOf("FA26", ref))
}

func TestStatus_Actual(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusClosed.Actual())
	assert.True(t, StatusShipping.Actual())
	assert.False(t, StatusPreBook.Actual())
	assert.False(t, StatusPlanning.Actual())
}

func TestCurrentShipping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  time.Time
		want string
	}{
		{time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "26SP"},
		{time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), "26SP"},
		{time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), "26FA"},
		{time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), "26FA"},

		// January and early February still belong to the prior Fall.
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "25FA"},
		{time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), "25FA"},
		{time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), "26SP"},
	}

	for _, tt := range tests {
		got := CurrentShipping(tt.ref)
		assert.Equal(t, tt.want, got.String(), "CurrentShipping(%s)", tt.ref.Format("2006-01-02"))
	}
}

func TestCurrentShipping_RoundTripsWithStatus(t *testing.T) {
	t.Parallel()

	// Walk three years of days; the current shipping season must always
	// report SHIPPING for the date that selected it.
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	for d.Before(end) {
		c := CurrentShipping(d)
		require.Equal(t, StatusShipping, c.StatusAt(d),
			"date %s mapped to %s", d.Format("2006-01-02"), c)
		d = d.AddDate(0, 0, 1)
	}
}

func TestInfoOf(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	info, ok := InfoOf("26fa", ref)
	require.True(t, ok)
	assert.Equal(t, "26FA", info.Code)
	assert.Equal(t, "Fall 2026", info.Label)
	assert.Equal(t, Fall, info.Half)
	assert.Equal(t, 2026, info.Year)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), info.ShipStart)
	assert.Equal(t, time.Date(2027, 2, 14, 0, 0, 0, 0, time.UTC), info.ShipEnd)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), info.PreBookStart)
	assert.Equal(t, StatusPreBook, info.Status)

	_, ok = InfoOf("not a season", ref)
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct{ code, label string }{
		{"26SP", "Spring 2026"},
		{"03FA", "Fall 2003"},
	} {
		c, ok := Parse(tt.code)
		require.True(t, ok)
		assert.Equal(t, tt.label, c.Label())
		assert.Equal(t, tt.code, fmt.Sprint(c))
	}
}
