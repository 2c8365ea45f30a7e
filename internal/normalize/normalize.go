package normalize

import (
	"fmt"
	"math"

	"github.com/sefallone/Plan-eco/internal/model"
)

// Cell coerces a raw cell for the given field kind. An empty cell is
// missing without a problem; a non-numeric or out-of-range cell is missing
// and the returned error describes why.
func Cell(kind model.Kind, raw string) (model.Num, error) {
	v, ok := ParseNumber(raw)
	if !ok {
		if TrimHeader(raw) == "" {
			return model.Missing, nil
		}
		return model.Missing, fmt.Errorf("non-numeric value %q", raw)
	}
	switch kind {
	case model.KindAmount:
		if v < 0 {
			return model.Missing, fmt.Errorf("negative value %v", v)
		}
	case model.KindCount:
		if v < 0 || v != math.Trunc(v) {
			return model.Missing, fmt.Errorf("count must be a whole number >= 0, got %v", v)
		}
	case model.KindDays:
		if v < 1 || v > 31 || v != math.Trunc(v) {
			return model.Missing, fmt.Errorf("days must be a whole number in 1-31, got %v", v)
		}
	default:
		return model.Missing, fmt.Errorf("kind %s is not numeric", kind)
	}
	return model.N(v), nil
}
