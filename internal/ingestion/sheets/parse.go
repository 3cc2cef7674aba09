package sheets

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Excel/Sheets serial day 0 is 1899-12-30.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.Local)

// Textual date layouts seen in manually-filled sheets, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2 January 2006",
	"02/01/2006 15:04:05",
	time.RFC3339,
}

// ParseDate reads a cell as a date: either a spreadsheet serial-day
// number or one of the known textual layouts. Only the calendar date is
// kept.
func ParseDate(raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t := serialEpoch.AddDate(0, 0, int(serial))
		return &t, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
			return &d, true
		}
	}
	return nil, false
}

var nonDigit = regexp.MustCompile(`[^0-9-]`)

// ParseInt reads a cell as an integer, stripping everything that is not a
// digit or minus sign ("± 25 orang" → 25).
func ParseInt(raw string) (*int, bool) {
	cleaned := nonDigit.ReplaceAllString(raw, "")
	if cleaned == "" || cleaned == "-" {
		return nil, false
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// ParseString trims a cell; empty becomes nil.
func ParseString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}
