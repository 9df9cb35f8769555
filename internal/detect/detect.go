// Package detect classifies a spreadsheet's column headers into one of the
// known record kinds and extracts season codes embedded in filenames. Real
// export files vary header naming between versions, so classification is a
// scored heuristic over known header spellings, not an exact schema match.
// Everything here is pure: no I/O, no shared state.
package detect

import "strings"

// FileType is the record kind a spreadsheet was classified as.
type FileType string

const (
	TypeLineList FileType = "linelist"
	TypeCosts    FileType = "costs"
	TypeSales    FileType = "sales"
	TypePricing  FileType = "pricing"
	TypeUnknown  FileType = "unknown"
)

// Confidence is the tier of trust in a classification.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Result is the outcome of classifying one header row.
type Result struct {
	Type           FileType   `json:"type"`
	Confidence     Confidence `json:"confidence"`
	MatchedColumns []string   `json:"matchedColumns"`
	AllColumns     []string   `json:"allColumns"`
}

// classifyRule is one ordered classification step: a signature, a minimum
// match count, confidence cut-offs, and an optional extra guard. Rules are
// evaluated strictly in order and the first that fires wins; the ordering
// is load-bearing because the signatures overlap.
type classifyRule struct {
	sig      signature
	min      int
	highAt   int
	mediumAt int
	guard    func(h *headerSet) bool
}

// rules, in priority order:
//  1. sales: most distinctive headers, pre-empts shared terms
//  2. costs: low threshold; its headers rarely appear elsewhere
//  3. pricing: only with a pricing marker present and no line-list marker
//  4. line list
//  5. pricing: fallback for sparse pricing exports without markers
var rules = []classifyRule{
	{sig: salesSignature, min: 3, highAt: 5, mediumAt: 4},
	{sig: costsSignature, min: 2, highAt: 4, mediumAt: 3},
	{
		sig: pricingSignature, min: 3, highAt: 5, mediumAt: 4,
		guard: func(h *headerSet) bool {
			return h.hasAny(pricingMarkers) && !h.hasAny(lineListMarkers)
		},
	},
	{sig: lineListSignature, min: 3, highAt: 6, mediumAt: 4},
	{sig: pricingSignature, min: 2, highAt: 4, mediumAt: 3},
}

// headerSet holds the normalized header row: trimmed originals for display
// and a lowercased lookup set for matching.
type headerSet struct {
	columns []string
	lookup  map[string]struct{}
}

func newHeaderSet(headers []string) *headerSet {
	h := &headerSet{
		columns: make([]string, 0, len(headers)),
		lookup:  make(map[string]struct{}, len(headers)),
	}
	for _, raw := range headers {
		col := strings.TrimSpace(raw)
		if col == "" {
			continue
		}
		h.columns = append(h.columns, col)
		h.lookup[strings.ToLower(col)] = struct{}{}
	}
	return h
}

func (h *headerSet) has(header string) bool {
	_, ok := h.lookup[strings.ToLower(header)]
	return ok
}

func (h *headerSet) hasAny(headers []string) bool {
	for _, hd := range headers {
		if h.has(hd) {
			return true
		}
	}
	return false
}

// matchCount reports how many of the signature's entries are present.
func (h *headerSet) matchCount(sig signature) int {
	n := 0
	for _, entry := range sig.Headers {
		if h.has(entry) {
			n++
		}
	}
	return n
}

// matched returns the headers, in input order, that belong to the signature.
func (h *headerSet) matched(sig signature) []string {
	want := make(map[string]struct{}, len(sig.Headers))
	for _, entry := range sig.Headers {
		want[strings.ToLower(entry)] = struct{}{}
	}
	out := []string{}
	for _, col := range h.columns {
		if _, ok := want[strings.ToLower(col)]; ok {
			out = append(out, col)
		}
	}
	return out
}

// Detect classifies a header row against the known column signatures.
// An unknown result with low confidence is a valid outcome, not a failure;
// the caller is expected to fall back to a human decision.
func Detect(headers []string) Result {
	h := newHeaderSet(headers)

	for _, rule := range rules {
		count := h.matchCount(rule.sig)
		if count < rule.min {
			continue
		}
		if rule.guard != nil && !rule.guard(h) {
			continue
		}
		return Result{
			Type:           rule.sig.Type,
			Confidence:     tier(count, rule.highAt, rule.mediumAt),
			MatchedColumns: h.matched(rule.sig),
			AllColumns:     h.columns,
		}
	}

	return Result{
		Type:           TypeUnknown,
		Confidence:     ConfidenceLow,
		MatchedColumns: []string{},
		AllColumns:     h.columns,
	}
}

func tier(count, highAt, mediumAt int) Confidence {
	switch {
	case count >= highAt:
		return ConfidenceHigh
	case count >= mediumAt:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
