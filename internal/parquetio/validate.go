package parquetio

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/sefallone/Plan-eco/internal/model"
)

// ValidateSchema checks that the Parquet schema carries the month column
// and returns the set of columns present.
func ValidateSchema(schema *parquet.Schema) (map[string]bool, error) {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	if !columns["month"] {
		return nil, fmt.Errorf("missing required column: month")
	}
	known := 0
	for _, f := range model.AllFields[1:] {
		if columns[f.Column] {
			known++
		}
	}
	if known == 0 {
		return nil, fmt.Errorf("no monthly record columns found")
	}
	return columns, nil
}
