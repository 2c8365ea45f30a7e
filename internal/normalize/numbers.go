package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyNoise  = strings.NewReplacer("$", "", "€", "", "%", "", " ", "", " ", "")
	groupedComma   = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+$`)
	groupedDot     = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)
	intGroupsDot   = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})*$`)
	intGroupsComma = regexp.MustCompile(`^-?\d{1,3}(,\d{3})*$`)
	digits         = regexp.MustCompile(`^\d+$`)
)

// ParseNumber coerces a cell to a number. Empty, non-numeric and ambiguous
// cells return ok=false and are treated as missing by callers.
//
// When both '.' and ',' appear, the last one is the decimal separator and
// the other must group thousands ("1.234,56", "1,234.56"). A lone comma is
// a thousands separator when every group after it has exactly three digits
// ("1,050"), otherwise a decimal comma ("2,10"). Several dots are accepted
// only as thousands groups ("1.234.567"); a single dot is decimal.
func ParseNumber(s string) (float64, bool) {
	s = currencyNoise.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	lastDot, lastComma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		dec, groups := lastDot, intGroupsComma
		if lastComma > lastDot {
			dec, groups = lastComma, intGroupsDot
		}
		intPart, frac := s[:dec], s[dec+1:]
		if !groups.MatchString(intPart) || !digits.MatchString(frac) {
			return 0, false
		}
		s = stripGroups(intPart) + "." + frac
	case lastComma >= 0:
		switch {
		case groupedComma.MatchString(s):
			s = strings.ReplaceAll(s, ",", "")
		case strings.Count(s, ",") == 1:
			s = strings.Replace(s, ",", ".", 1)
		default:
			return 0, false
		}
	case strings.Count(s, ".") > 1:
		if !groupedDot.MatchString(s) {
			return 0, false
		}
		s = strings.ReplaceAll(s, ".", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func stripGroups(s string) string {
	return strings.NewReplacer(".", "", ",", "").Replace(s)
}
