package validator

import (
	"strings"
	"time"
)

// dateLayouts covers the formats seen in extraction output. ISO first, then
// regional numeric forms, then textual month forms. Matching is attempted in
// order and the first parse wins, so ambiguous numeric dates resolve to the
// earlier layout in this list.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"01-02-2006",
	"2006.01.02",
	"02.01.2006",
	"20060102",
	"2 January 2006",
	"02 January 2006",
	"January 2, 2006",
	"January 02, 2006",
	"Jan 2, 2006",
	"Jan 02, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2006 Jan 02",
	"02-Jan-2006",
	"2-Jan-2006",
}

// ParseDate parses a free-text date from an extraction field. Matching is
// case-insensitive. The zero time and false are returned when no layout fits.
func ParseDate(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}
	v = titleCase(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// titleCase normalizes textual month names so layouts like "January" match
// inputs written in any case.
func titleCase(s string) string {
	b := []byte(strings.ToLower(s))
	upperNext := true
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			if upperNext {
				b[i] = c - 'a' + 'A'
			}
			upperNext = false
		} else {
			upperNext = true
		}
	}
	return string(b)
}

// ageAt returns whole years between birth and ref.
func ageAt(birth, ref time.Time) int {
	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	return years
}

// yearsBetween returns the fractional year span between two dates.
func yearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / 365.25
}

// sameMonthDay reports whether two dates share month and day, the test for
// licences that expire on the holder's birthday.
func sameMonthDay(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Day() == b.Day()
}
