// Package model holds the record types shared by the store, importer and
// API layers.
package model

// Product is one style/color row from a line list export.
type Product struct {
	ID           int64   `json:"id"`
	StyleNumber  string  `json:"styleNumber"`
	StyleName    string  `json:"styleName"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Division     string  `json:"division"`
	Color        string  `json:"color"`
	Season       string  `json:"season"`
	MSRP         float64 `json:"msrp"`
	Wholesale    float64 `json:"wholesale"`
	SourceFile   string  `json:"sourceFile"`
	ImportID     string  `json:"importId"`
}

// Sale is one customer booking/shipping row from a sales export.
type Sale struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customerName"`
	CustomerType string  `json:"customerType"`
	Season       string  `json:"season"`
	StyleNumber  string  `json:"styleNumber"`
	Revenue      float64 `json:"revenue"`
	UnitsBooked  float64 `json:"unitsBooked"`
	UnitsShipped float64 `json:"unitsShipped"`
	ShipDate     string  `json:"shipDate"`
	SourceFile   string  `json:"sourceFile"`
	ImportID     string  `json:"importId"`
}

// PricingRecord is one style/color price row from a pricing export.
type PricingRecord struct {
	ID          int64   `json:"id"`
	StyleNumber string  `json:"styleNumber"`
	Color       string  `json:"color"`
	Season      string  `json:"season"`
	Price       float64 `json:"price"`
	MSRP        float64 `json:"msrp"`
	Currency    string  `json:"currency"`
	SourceFile  string  `json:"sourceFile"`
	ImportID    string  `json:"importId"`
}

// CostKind labels whether a cost row is an actual or a projection. It is
// decided at import time from the season's lifecycle status.
type CostKind string

const (
	CostActual    CostKind = "actual"
	CostProjected CostKind = "projected"
)

// CostRecord is one style cost row from a costs export.
type CostRecord struct {
	ID          int64    `json:"id"`
	StyleNumber string   `json:"styleNumber"`
	Season      string   `json:"season"`
	Cost        float64  `json:"cost"`
	LandedCost  float64  `json:"landedCost"`
	Kind        CostKind `json:"kind"`
	Factory     string   `json:"factory"`
	Origin      string   `json:"origin"`
	SourceFile  string   `json:"sourceFile"`
	ImportID    string   `json:"importId"`
}
