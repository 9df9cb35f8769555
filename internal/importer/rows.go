package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/model"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/season"
)

// columnIndex maps lowercased header names to their column position.
type columnIndex map[string]int

func newColumnIndex(headers []string) columnIndex {
	idx := make(columnIndex, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

// find returns the position of the first header spelling present.
func (idx columnIndex) find(spellings ...string) (int, bool) {
	for _, s := range spellings {
		if i, ok := idx[strings.ToLower(s)]; ok {
			return i, true
		}
	}
	return 0, false
}

func cell(row []string, i int, ok bool) string {
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseAmount reads a numeric cell, tolerating currency symbols and
// thousands separators. Unreadable cells come back as zero; the core never
// validates business values.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// rowSeason resolves the season for one row: the row's own Season column
// when present and parseable, otherwise the file-level season. ok is false
// when neither yields a season.
func rowSeason(row []string, seasonIdx int, seasonOK bool, fileSeason string) (string, bool) {
	if v := cell(row, seasonIdx, seasonOK); v != "" {
		if c, ok := season.Parse(v); ok {
			return c.String(), true
		}
	}
	if fileSeason != "" {
		return fileSeason, true
	}
	return "", false
}

// coerceProducts maps line list rows onto Product records.
func coerceProducts(headers []string, rows [][]string, fileSeason, sourceFile, importID string) ([]*model.Product, []string) {
	idx := newColumnIndex(headers)

	styleI, styleOK := idx.find("Style #", "Style", "Style Number")
	nameI, nameOK := idx.find("Style Name")
	descI, descOK := idx.find("Style Desc", "Description")
	catI, catOK := idx.find("Category", "Cat Desc")
	divI, divOK := idx.find("Division", "Division Desc")
	colorI, colorOK := idx.find("Color", "Clr_Desc")
	seasonI, seasonOK := idx.find("Season")
	msrpI, msrpOK := idx.find("MSRP")
	wholesaleI, wholesaleOK := idx.find("Wholesale", "Price")

	var out []*model.Product
	var errs []string
	for n, row := range rows {
		style := cell(row, styleI, styleOK)
		if style == "" {
			errs = append(errs, fmt.Sprintf("row %d: missing style number", n+2))
			continue
		}
		code, ok := rowSeason(row, seasonI, seasonOK, fileSeason)
		if !ok {
			errs = append(errs, fmt.Sprintf("row %d: season unknown", n+2))
			continue
		}
		out = append(out, &model.Product{
			StyleNumber: style,
			StyleName:   cell(row, nameI, nameOK),
			Description: cell(row, descI, descOK),
			Category:    cell(row, catI, catOK),
			Division:    cell(row, divI, divOK),
			Color:       cell(row, colorI, colorOK),
			Season:      code,
			MSRP:        parseAmount(cell(row, msrpI, msrpOK)),
			Wholesale:   parseAmount(cell(row, wholesaleI, wholesaleOK)),
			SourceFile:  sourceFile,
			ImportID:    importID,
		})
	}
	return out, errs
}

// coerceSales maps sales export rows onto Sale records.
func coerceSales(headers []string, rows [][]string, fileSeason, sourceFile, importID string) ([]*model.Sale, []string) {
	idx := newColumnIndex(headers)

	custI, custOK := idx.find("Customer Name", "Customer")
	typeI, typeOK := idx.find("Customer Type")
	styleI, styleOK := idx.find("Style #", "Style", "Style Number")
	seasonI, seasonOK := idx.find("Season")
	revI, revOK := idx.find("Revenue", "Net Revenue")
	bookedI, bookedOK := idx.find("Units Current Booked", "Units Booked")
	shippedI, shippedOK := idx.find("Units Shipped")
	shipDateI, shipDateOK := idx.find("Ship Date")

	var out []*model.Sale
	var errs []string
	for n, row := range rows {
		customer := cell(row, custI, custOK)
		if customer == "" {
			errs = append(errs, fmt.Sprintf("row %d: missing customer", n+2))
			continue
		}
		code, ok := rowSeason(row, seasonI, seasonOK, fileSeason)
		if !ok {
			errs = append(errs, fmt.Sprintf("row %d: season unknown", n+2))
			continue
		}
		out = append(out, &model.Sale{
			CustomerName: customer,
			CustomerType: cell(row, typeI, typeOK),
			Season:       code,
			StyleNumber:  cell(row, styleI, styleOK),
			Revenue:      parseAmount(cell(row, revI, revOK)),
			UnitsBooked:  parseAmount(cell(row, bookedI, bookedOK)),
			UnitsShipped: parseAmount(cell(row, shippedI, shippedOK)),
			ShipDate:     cell(row, shipDateI, shipDateOK),
			SourceFile:   sourceFile,
			ImportID:     importID,
		})
	}
	return out, errs
}

// coercePricing maps pricing export rows onto PricingRecord records.
func coercePricing(headers []string, rows [][]string, fileSeason, sourceFile, importID string) ([]*model.PricingRecord, []string) {
	idx := newColumnIndex(headers)

	styleI, styleOK := idx.find("Style #", "Style", "Style Number")
	colorI, colorOK := idx.find("Color", "Clr_Desc")
	seasonI, seasonOK := idx.find("Season")
	priceI, priceOK := idx.find("Price", "Price List")
	msrpI, msrpOK := idx.find("MSRP")
	currencyI, currencyOK := idx.find("Currency")

	var out []*model.PricingRecord
	var errs []string
	for n, row := range rows {
		style := cell(row, styleI, styleOK)
		if style == "" {
			errs = append(errs, fmt.Sprintf("row %d: missing style number", n+2))
			continue
		}
		code, ok := rowSeason(row, seasonI, seasonOK, fileSeason)
		if !ok {
			errs = append(errs, fmt.Sprintf("row %d: season unknown", n+2))
			continue
		}
		currency := cell(row, currencyI, currencyOK)
		if currency == "" {
			currency = "USD"
		}
		out = append(out, &model.PricingRecord{
			StyleNumber: style,
			Color:       cell(row, colorI, colorOK),
			Season:      code,
			Price:       parseAmount(cell(row, priceI, priceOK)),
			MSRP:        parseAmount(cell(row, msrpI, msrpOK)),
			Currency:    currency,
			SourceFile:  sourceFile,
			ImportID:    importID,
		})
	}
	return out, errs
}

// coerceCosts maps costs export rows onto CostRecord records. kindFor
// decides actual vs projected from the row's season.
func coerceCosts(headers []string, rows [][]string, fileSeason, sourceFile, importID string, kindFor func(seasonCode string) model.CostKind) ([]*model.CostRecord, []string) {
	idx := newColumnIndex(headers)

	styleI, styleOK := idx.find("Style Number", "Style #", "Style")
	seasonI, seasonOK := idx.find("Season")
	costI, costOK := idx.find("Cost", "FOB Cost", "FOB")
	landedI, landedOK := idx.find("Landed Cost", "LDP Cost", "LDP")
	factoryI, factoryOK := idx.find("Factory")
	originI, originOK := idx.find("Country of Origin")

	var out []*model.CostRecord
	var errs []string
	for n, row := range rows {
		style := cell(row, styleI, styleOK)
		if style == "" {
			errs = append(errs, fmt.Sprintf("row %d: missing style number", n+2))
			continue
		}
		code, ok := rowSeason(row, seasonI, seasonOK, fileSeason)
		if !ok {
			errs = append(errs, fmt.Sprintf("row %d: season unknown", n+2))
			continue
		}
		out = append(out, &model.CostRecord{
			StyleNumber: style,
			Season:      code,
			Cost:        parseAmount(cell(row, costI, costOK)),
			LandedCost:  parseAmount(cell(row, landedI, landedOK)),
			Kind:        kindFor(code),
			Factory:     cell(row, factoryI, factoryOK),
			Origin:      cell(row, originI, originOK),
			SourceFile:  sourceFile,
			ImportID:    importID,
		})
	}
	return out, errs
}
