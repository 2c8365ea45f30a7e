package model

import "github.com/google/uuid"

// RecordColumns returns the ordered column names for COPY into
// report.monthly_records.
func RecordColumns() []string {
	cols := []string{"batch_id", "month"}
	return append(cols, ValueColumns()...)
}

// CopyValues returns the record values in the same order as RecordColumns(),
// suitable for pgx CopyFromSource.
func (r MonthlyRecord) CopyValues(batchID uuid.UUID) []any {
	vals := []any{batchID, r.Month}
	for _, col := range ValueColumns() {
		v, _ := r.Value(col)
		vals = append(vals, v.Ptr())
	}
	return vals
}
