package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// MonthTable maps lowercase month abbreviations to month numbers (1-12).
// Date parsing never consults the host locale.
type MonthTable map[string]time.Month

// DefaultMonthTable covers Spanish and English abbreviations.
func DefaultMonthTable() MonthTable {
	return MonthTable{
		"ene": time.January, "jan": time.January,
		"feb": time.February,
		"mar": time.March,
		"abr": time.April, "apr": time.April,
		"may": time.May,
		"jun": time.June,
		"jul": time.July,
		"ago": time.August, "aug": time.August,
		"sep": time.September, "sept": time.September, "set": time.September,
		"oct": time.October,
		"nov": time.November,
		"dic": time.December, "dec": time.December,
	}
}

// Merge returns a copy of t with extra entries added (keys are lowercased).
func (t MonthTable) Merge(extra map[string]int) (MonthTable, error) {
	out := make(MonthTable, len(t)+len(extra))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range extra {
		if v < 1 || v > 12 {
			return nil, fmt.Errorf("month name %q: month %d out of range 1-12", k, v)
		}
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			return nil, fmt.Errorf("empty month name")
		}
		out[key] = time.Month(v)
	}
	return out, nil
}

// Spreadsheet serials are accepted only between 1950-01-01 and
// 9999-12-31, so year-only or small numeric cells are not read as dates.
const (
	minDateSerial = 18264
	maxDateSerial = 2958465
)

// ISO forms written by the Parquet export and accepted on re-import.
var isoFormats = []string{
	"2006-01",
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
}

// Parse turns a month token into the first day of that month (UTC).
// Accepted: "oct-25", "Oct 2025", "oct.-25", ISO dates and spreadsheet
// serial day numbers.
func (t MonthTable) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range isoFormats {
		if d, err := time.Parse(layout, s); err == nil {
			return firstOfMonth(d.Year(), d.Month()), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial < minDateSerial || serial >= maxDateSerial+1 {
			return time.Time{}, fmt.Errorf("number %q is not a date", s)
		}
		d, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("date serial %q: %w", s, err)
		}
		return firstOfMonth(d.Year(), d.Month()), nil
	}

	name, year, ok := splitMonthYear(s)
	if !ok {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	m, ok := t[strings.ToLower(name)]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month name %q in %q", name, s)
	}
	y, err := parseYear(year)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, err)
	}
	return firstOfMonth(y, m), nil
}

func splitMonthYear(s string) (name, year string, ok bool) {
	i := strings.IndexAny(s, "-/ ")
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	name = strings.TrimRight(s[:i], ".")
	year = strings.TrimLeft(s[i+1:], "-/ ")
	return name, year, name != "" && year != ""
}

// parseYear accepts 4-digit years and 2-digit years with the POSIX %y pivot:
// 69-99 map to 19xx, 00-68 to 20xx.
func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil || y < 0 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	switch len(s) {
	case 2:
		if y >= 69 {
			return 1900 + y, nil
		}
		return 2000 + y, nil
	case 4:
		return y, nil
	}
	return 0, fmt.Errorf("invalid year %q", s)
}

func firstOfMonth(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
