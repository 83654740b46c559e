package services

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// CanonicalDateLayout is the YYYY-MM-DD form every normalized date takes.
// Zero padding makes lexicographic comparison match calendar order.
const CanonicalDateLayout = "2006-01-02"

// Spreadsheet serials are read as serialEpoch + (serial-1) days, so serial
// 45001 is 2023-03-15. maxSerialDate maps to 9999-12-31.
const maxSerialDate = 2958466

var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// textDateLayouts are tried, in order, on text that is not a plain
// day/month/year triple.
var textDateLayouts = []string{
	CanonicalDateLayout,
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"2006.01.02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"Mon Jan 2 2006",
	"Mon, 2 Jan 2006",
}

// NormalizeDate converts a sheet cell into a canonical YYYY-MM-DD string.
// The boolean is false when the value cannot be read as a date; it never
// panics or fails otherwise.
//
// Numbers are spreadsheet serial day counts. Text is first tried as a
// day/month/year triple split on '-', '/' or '.', day-first before
// month-first, and then against a list of common layouts. The first
// interpretation that forms a real calendar date wins, so an ambiguous
// value such as 03-04-2024 is read as 3 April 2024.
func NormalizeDate(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return normalizeDateText(v)
	case time.Time:
		if v.IsZero() {
			return "", false
		}
		return v.Format(CanonicalDateLayout), true
	}

	if serial, ok := cellFloat(value); ok {
		return normalizeSerialDate(serial)
	}
	return "", false
}

// IsCanonicalDate reports whether s is a valid date already in YYYY-MM-DD form
func IsCanonicalDate(s string) bool {
	if len(s) != len(CanonicalDateLayout) {
		return false
	}
	_, err := time.Parse(CanonicalDateLayout, s)
	return err == nil
}

func normalizeSerialDate(serial float64) (string, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return "", false
	}
	days := math.Floor(serial)
	if days < 1 || days > maxSerialDate {
		return "", false
	}
	return serialEpoch.AddDate(0, 0, int(days)-1).Format(CanonicalDateLayout), true
}

func normalizeDateText(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	if day, month, year, ok := splitDateTriple(text); ok {
		if t, ok := calendarDate(year, day, month); ok {
			return t.Format(CanonicalDateLayout), true
		}
		if t, ok := calendarDate(year, month, day); ok {
			return t.Format(CanonicalDateLayout), true
		}
	}

	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Format(CanonicalDateLayout), true
		}
	}
	return "", false
}

// splitDateTriple splits "a-b-yyyy" style text into its three numbers. The
// same separator must be used twice and the last component must be a
// four-digit year.
func splitDateTriple(text string) (first, second, year int, ok bool) {
	sep := strings.IndexAny(text, "-/.")
	if sep <= 0 {
		return 0, 0, 0, false
	}
	parts := strings.Split(text, text[sep:sep+1])
	if len(parts) != 3 || len(parts[2]) != 4 {
		return 0, 0, 0, false
	}

	nums := make([]int, 3)
	for i, part := range parts {
		if part == "" || len(part) > 4 {
			return 0, 0, 0, false
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || strings.ContainsAny(part, "+-") {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}

// calendarDate builds the date only when day and month name a real day of
// that year; time.Date would silently roll 31 February into March.
func calendarDate(year, day, month int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
