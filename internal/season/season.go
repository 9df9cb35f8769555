// Package season is the single source of truth for season-code parsing and
// the business calendar derived from it: shipping windows, pre-book windows
// and lifecycle status. Everything here is a pure function over its inputs;
// invalid codes yield absent values, never errors or panics.
package season

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Half identifies which half of the fiscal year a season falls in.
type Half string

const (
	Spring Half = "SP"
	Fall   Half = "FA"
)

// Code is a parsed season code: a full calendar year plus a half indicator.
// Canonical textual form is "<YY><SP|FA>", e.g. "26FA".
type Code struct {
	Year int
	Half Half
}

var codeRe = regexp.MustCompile(`^(\d{2})(SP|FA)$`)

// Parse parses a season code string. Only the exact two-digit-year +
// SP/FA pattern is accepted (case-insensitive); anything else returns
// ok=false.
func Parse(s string) (Code, bool) {
	m := codeRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return Code{}, false
	}
	yy, err := strconv.Atoi(m[1])
	if err != nil {
		return Code{}, false
	}
	return Code{Year: 2000 + yy, Half: Half(m[2])}, true
}

// String returns the canonical "<YY><SP|FA>" form.
func (c Code) String() string {
	return fmt.Sprintf("%02d%s", c.Year%100, c.Half)
}

// Label returns the human form, e.g. "Fall 2026".
func (c Code) Label() string {
	if c.Half == Spring {
		return fmt.Sprintf("Spring %d", c.Year)
	}
	return fmt.Sprintf("Fall %d", c.Year)
}

// date builds a day-granularity boundary in UTC so comparisons do not
// depend on the host timezone.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ShipStart returns the first day of the shipping window.
// Spring ships Feb 15, Fall ships Aug 15.
func (c Code) ShipStart() time.Time {
	if c.Half == Spring {
		return date(c.Year, time.February, 15)
	}
	return date(c.Year, time.August, 15)
}

// ShipEnd returns the last day of the shipping window (inclusive).
// The Fall window straddles the calendar-year boundary and ends
// Feb 14 of the following year.
func (c Code) ShipEnd() time.Time {
	if c.Half == Spring {
		return date(c.Year, time.August, 14)
	}
	return date(c.Year+1, time.February, 14)
}

// PreBookStart returns the first day of the pre-book window.
// These are fixed calendar dates (Jun 1 / Dec 1 of the prior year),
// not offsets computed from the ship start.
func (c Code) PreBookStart() time.Time {
	if c.Half == Spring {
		return date(c.Year-1, time.June, 1)
	}
	return date(c.Year-1, time.December, 1)
}

// Status is the lifecycle stage of a season relative to a reference date.
type Status string

const (
	StatusClosed   Status = "CLOSED"
	StatusShipping Status = "SHIPPING"
	StatusPreBook  Status = "PRE-BOOK"
	StatusPlanning Status = "PLANNING"
)

// truncate drops the time-of-day so comparisons run at day granularity.
func truncate(t time.Time) time.Time {
	return date(t.Year(), t.Month(), t.Day())
}

// StatusAt reports the season's lifecycle stage on the given date.
// The ship-end day itself still counts as SHIPPING.
func (c Code) StatusAt(ref time.Time) Status {
	d := truncate(ref)
	switch {
	case d.After(c.ShipEnd()):
		return StatusClosed
	case !d.Before(c.ShipStart()):
		return StatusShipping
	case !d.Before(c.PreBookStart()):
		return StatusPreBook
	default:
		return StatusPlanning
	}
}

// StatusOf parses code and reports its status. Unparseable codes report
// CLOSED so downstream consumers fail safe rather than treating junk as
// an open season.
func StatusOf(code string, ref time.Time) Status {
	c, ok := Parse(code)
	if !ok {
		return StatusClosed
	}
	return c.StatusAt(ref)
}

// Actual reports whether costs recorded for this status are actuals.
// CLOSED and SHIPPING seasons carry actual costs; earlier stages carry
// projections.
func (s Status) Actual() bool {
	return s == StatusClosed || s == StatusShipping
}

// CurrentShipping returns the season whose shipping window contains ref.
// Jan 1 through Feb 14 belong to the previous calendar year's Fall season.
func CurrentShipping(ref time.Time) Code {
	d := truncate(ref)
	year := d.Year()

	fallPrev := Code{Year: year - 1, Half: Fall}
	if !d.After(fallPrev.ShipEnd()) {
		return fallPrev
	}
	spring := Code{Year: year, Half: Spring}
	if !d.After(spring.ShipEnd()) {
		return spring
	}
	return Code{Year: year, Half: Fall}
}

// Info bundles the derived calendar facts for one season. It is computed
// fresh on every call and never persisted.
type Info struct {
	Code         string    `json:"code"`
	Label        string    `json:"label"`
	Half         Half      `json:"half"`
	Year         int       `json:"year"`
	ShipStart    time.Time `json:"shipStart"`
	ShipEnd      time.Time `json:"shipEnd"`
	PreBookStart time.Time `json:"preBookStart"`
	Status       Status    `json:"status"`
}

// InfoOf derives the full calendar info for a season code at a reference
// date. ok is false only when the code itself is unparseable.
func InfoOf(code string, ref time.Time) (Info, bool) {
	c, ok := Parse(code)
	if !ok {
		return Info{}, false
	}
	return Info{
		Code:         c.String(),
		Label:        c.Label(),
		Half:         c.Half,
		Year:         c.Year,
		ShipStart:    c.ShipStart(),
		ShipEnd:      c.ShipEnd(),
		PreBookStart: c.PreBookStart(),
		Status:       c.StatusAt(ref),
	}, true
}
