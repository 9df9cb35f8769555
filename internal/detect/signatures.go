package detect

// Column signatures are static configuration: the known header spellings
// (including historical variants) that identify each record kind. They are
// plain data so new spellings can be added without touching the
// classification rules in detect.go.
//
// Signatures overlap on purpose ("Price", "MSRP" and "Season" appear in
// exports of more than one kind), so the rule ordering and the marker
// columns below carry the disambiguation, not the lists themselves.

type signature struct {
	Type    FileType
	Headers []string
}

var salesSignature = signature{
	Type: TypeSales,
	Headers: []string{
		"Revenue",
		"Net Revenue",
		"Units Current Booked",
		"Units Booked",
		"Units Shipped",
		"Customer",
		"Customer Name",
		"Customer Type",
		"Ship Date",
		"Order Date",
		"Door Count",
	},
}

var costsSignature = signature{
	Type: TypeCosts,
	Headers: []string{
		"Cost",
		"FOB",
		"FOB Cost",
		"LDP",
		"LDP Cost",
		"Landed Cost",
		"Projected Cost",
		"Actual Cost",
		"Duty",
		"Freight",
		"Factory",
		"Country of Origin",
		"Style Number",
	},
}

var pricingSignature = signature{
	Type: TypePricing,
	Headers: []string{
		"Style",
		"Color",
		"Season",
		"Sea Desc",
		"Season Desc",
		"Clr_Desc",
		"Price",
		"Price List",
		"MSRP",
		"Wholesale",
		"Currency",
	},
}

var lineListSignature = signature{
	Type: TypeLineList,
	Headers: []string{
		"Style #",
		"Style",
		"Style Desc",
		"Style Name",
		"Color",
		"Season",
		"Category",
		"Cat Desc",
		"Division",
		"Division Desc",
		"MSRP",
		"Wholesale",
		"Price",
		"Fabric",
		"Gender",
	},
}

// pricingMarkers are headers that only ever appear in pricing exports;
// lineListMarkers only in line lists. They are the reliable discriminators
// between the two heavily overlapping signatures.
var pricingMarkers = []string{"sea desc", "season desc", "clr_desc"}

var lineListMarkers = []string{"category", "cat desc", "division", "division desc"}
