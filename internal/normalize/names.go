package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var multiSpace = regexp.MustCompile(`\s+`)

// TrimHeader strips leading and trailing whitespace from a column name.
func TrimHeader(s string) string {
	return strings.TrimSpace(s)
}

// HeaderKey folds a header for alias matching: trimmed, lowercased,
// diacritics removed, inner whitespace collapsed. "Facturación  CCEE"
// and "facturacion ccee" share a key.
func HeaderKey(s string) string {
	s = TrimHeader(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	s = multiSpace.ReplaceAllString(strings.ToLower(s), " ")
	s = strings.ReplaceAll(s, "( ", "(")
	return strings.ReplaceAll(s, " )", ")")
}
