package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// Num is a nullable number. A missing value (Valid == false) is excluded
// from sums and means.
type Num struct {
	V     float64
	Valid bool
}

// N returns a present value.
func N(v float64) Num {
	return Num{V: v, Valid: true}
}

// Missing is the absent value.
var Missing = Num{}

// Add returns a+b, or Missing when either side is missing.
func (n Num) Add(o Num) Num {
	if !n.Valid || !o.Valid {
		return Missing
	}
	return N(n.V + o.V)
}

// Ptr returns nil for a missing value. Used for pgx and parquet optional columns.
func (n Num) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.V
	return &v
}

// NumFromPtr is the inverse of Ptr.
func NumFromPtr(p *float64) Num {
	if p == nil {
		return Missing
	}
	return N(*p)
}

// String renders the value the way it is written back to tabular outputs.
func (n Num) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.V, 'f', -1, 64)
}

func (n Num) MarshalJSON() ([]byte, error) {
	if !n.Valid || math.IsNaN(n.V) || math.IsInf(n.V, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(n.V)
}
