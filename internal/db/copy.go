package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sefallone/Plan-eco/internal/model"
)

// RecordSource implements pgx.CopyFromSource over a dataset's records,
// tagging every row with the load batch.
type RecordSource struct {
	batchID uuid.UUID
	records []model.MonthlyRecord
	idx     int
}

// NewRecordSource creates a CopyFromSource over records.
func NewRecordSource(batchID uuid.UUID, records []model.MonthlyRecord) *RecordSource {
	return &RecordSource{batchID: batchID, records: records, idx: -1}
}

// Next advances to the next record. Returns false after the last one.
func (s *RecordSource) Next() bool {
	s.idx++
	return s.idx < len(s.records)
}

// Values returns the current record's values in COPY column order.
func (s *RecordSource) Values() ([]any, error) {
	return s.records[s.idx].CopyValues(s.batchID), nil
}

// Err returns any error encountered during iteration.
func (s *RecordSource) Err() error {
	return nil
}

// Compile-time check that RecordSource satisfies the interface.
var _ pgx.CopyFromSource = (*RecordSource)(nil)
