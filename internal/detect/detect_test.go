package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_Sales(t *testing.T) {
	t.Parallel()

	headers := []string{"Revenue", "Units Current Booked", "Customer Name", "Customer Type", "Ship Date"}
	res := Detect(headers)

	assert.Equal(t, TypeSales, res.Type)
	assert.Equal(t, ConfidenceHigh, res.Confidence)
	assert.Equal(t, headers, res.MatchedColumns)
	assert.Equal(t, headers, res.AllColumns)
}

func TestDetect_SalesConfidenceTiers(t *testing.T) {
	t.Parallel()

	res := Detect([]string{"Revenue", "Customer Name", "Ship Date", "Units Booked"})
	assert.Equal(t, TypeSales, res.Type)
	assert.Equal(t, ConfidenceMedium, res.Confidence)

	res = Detect([]string{"Revenue", "Customer Name", "Ship Date"})
	assert.Equal(t, TypeSales, res.Type)
	assert.Equal(t, ConfidenceLow, res.Confidence)
}

func TestDetect_Costs(t *testing.T) {
	t.Parallel()

	res := Detect([]string{"Style Number", "FOB Cost", "LDP Cost", "Factory"})
	assert.Equal(t, TypeCosts, res.Type)
	assert.Equal(t, ConfidenceHigh, res.Confidence)

	// Two matches is enough for a low-confidence costs verdict.
	res = Detect([]string{"FOB", "Freight", "Comments"})
	assert.Equal(t, TypeCosts, res.Type)
	assert.Equal(t, ConfidenceLow, res.Confidence)
}

func TestDetect_LineList(t *testing.T) {
	t.Parallel()

	res := Detect([]string{"Style #", "Style Desc", "MSRP", "Wholesale", "Category", "Division"})
	assert.Equal(t, TypeLineList, res.Type)
	assert.Equal(t, ConfidenceHigh, res.Confidence)
	assert.Len(t, res.MatchedColumns, 6)
}

func TestDetect_PricingBeatsLineListOnMarker(t *testing.T) {
	t.Parallel()

	// Price/MSRP/Season/Style/Color sit in both the pricing and line-list
	// signatures; "Sea Desc" is the pricing marker that must decide it.
	res := Detect([]string{"Style", "Color", "Season", "Sea Desc", "Price", "MSRP"})
	assert.Equal(t, TypePricing, res.Type)
	assert.Equal(t, ConfidenceHigh, res.Confidence)
}

func TestDetect_LineListMarkerBlocksPricing(t *testing.T) {
	t.Parallel()

	// Same overlapping headers, but a line-list marker column is present,
	// so the pricing priority rule must stand down.
	res := Detect([]string{"Style", "Color", "Season", "Sea Desc", "Price", "MSRP", "Division"})
	assert.Equal(t, TypeLineList, res.Type)
}

func TestDetect_PricingFallbackWithoutMarker(t *testing.T) {
	t.Parallel()

	// A sparse pricing export with no marker column and too few line-list
	// matches lands in the pricing fallback rule.
	res := Detect([]string{"Price List", "Currency", "Item"})
	assert.Equal(t, TypePricing, res.Type)
	assert.Equal(t, ConfidenceLow, res.Confidence)
}

func TestDetect_Unknown(t *testing.T) {
	t.Parallel()

	res := Detect([]string{"Season", "Notes", "Approved By"})
	assert.Equal(t, TypeUnknown, res.Type)
	assert.Equal(t, ConfidenceLow, res.Confidence)
	assert.Empty(t, res.MatchedColumns)
	assert.Equal(t, []string{"Season", "Notes", "Approved By"}, res.AllColumns)
}

func TestDetect_NormalizesHeaders(t *testing.T) {
	t.Parallel()

	res := Detect([]string{"  revenue ", "UNITS CURRENT BOOKED", "customer name", "", "Customer Type", "ship date"})
	assert.Equal(t, TypeSales, res.Type)
	assert.Equal(t, ConfidenceHigh, res.Confidence)

	// Blank cells are dropped, original spelling is preserved.
	require.Len(t, res.AllColumns, 5)
	assert.Equal(t, "revenue", res.AllColumns[0])
}

func TestDetect_SalesPreemptsSharedCustomerColumn(t *testing.T) {
	t.Parallel()

	// "Customer" alone must not drag a sales file into a weaker verdict
	// when the rest of the sales signature is present.
	res := Detect([]string{"Customer", "Revenue", "Units Shipped", "Season", "Style"})
	assert.Equal(t, TypeSales, res.Type)
}

func TestDetect_Empty(t *testing.T) {
	t.Parallel()

	res := Detect(nil)
	assert.Equal(t, TypeUnknown, res.Type)
	assert.Equal(t, ConfidenceLow, res.Confidence)
	assert.Empty(t, res.AllColumns)
}
