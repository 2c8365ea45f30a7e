package loader

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoadError is fatal: the source is absent or not usable as tabular data.
// A failed load leaves any previously loaded Dataset untouched.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// WarningKind classifies a non-fatal load condition.
type WarningKind string

const (
	// MissingColumn: a required field is absent; it was zero-filled.
	MissingColumn WarningKind = "missing_column"
	// DateParse: the row's date token did not parse; the row was dropped.
	DateParse WarningKind = "date_parse"
	// DuplicateMonth: a later row for the same month replaced an earlier one.
	DuplicateMonth WarningKind = "duplicate_month"
	// InvalidValue: a cell was non-numeric or out of range; it is missing.
	InvalidValue WarningKind = "invalid_value"
	// DuplicateColumn: two headers map to the same column; the first is used.
	DuplicateColumn WarningKind = "duplicate_column"
)

// Warning is a non-fatal condition found while loading. Row is the 1-based
// data row (the header is row 0); it is 0 for column-level warnings.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Row     int         `json:"row,omitempty"`
	Column  string      `json:"column,omitempty"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	switch {
	case w.Row > 0 && w.Column != "":
		return fmt.Sprintf("%s: row %d, column %s: %s", w.Kind, w.Row, w.Column, w.Message)
	case w.Row > 0:
		return fmt.Sprintf("%s: row %d: %s", w.Kind, w.Row, w.Message)
	case w.Column != "":
		return fmt.Sprintf("%s: column %s: %s", w.Kind, w.Column, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// MarshalZerologObject writes the warning as structured log fields.
func (w Warning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("kind", string(w.Kind))
	if w.Row > 0 {
		e.Int("row", w.Row)
	}
	if w.Column != "" {
		e.Str("column", w.Column)
	}
	e.Str("detail", w.Message)
}
