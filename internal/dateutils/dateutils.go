// Package dateutils provides the date parsing used by the statement parsers.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// StatementLayout is the fixed day-month-year format used by bank statements,
// e.g. "20 Jan 2024". Both the text and spreadsheet parsers render dates in
// this layout.
const StatementLayout = "02 Jan 2006"

// RenderLayouts are the formats tried when coercing spreadsheet cells that a
// workbook has already rendered as text (locale varies per export).
var RenderLayouts = []string{
	StatementLayout,
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"02.01.2006",
	"02-01-06",
	"2-Jan-2006",
	"02 Jan 06",
}

// ParseStatementDate parses a statement date in the fixed layout. Strings
// shorter than the layout are rejected outright, matching the row-skip rule
// for truncated date fields.
func ParseStatementDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) < len("2 Jan 2006") {
		return time.Time{}, fmt.Errorf("date %q too short for layout %q", s, StatementLayout)
	}
	t, err := time.Parse(StatementLayout, s)
	if err != nil {
		// Single-digit days ("2 Jan 2024") appear in some exports.
		t, err = time.Parse("2 Jan 2006", s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q: %w", s, err)
	}
	return t, nil
}

// excelEpoch is day zero of the 1900 date system (accounting for the
// spreadsheet leap-year bug).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// FromExcelSerial converts a spreadsheet serial day number to a time.
func FromExcelSerial(serial float64) time.Time {
	return excelEpoch.Add(time.Duration(serial * 24 * float64(time.Hour)))
}

// ParseRenderedDate tries the known rendered layouts in order.
func ParseRenderedDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range RenderLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
