package db

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sefallone/Plan-eco/internal/model"
)

func TestRecordSource_IteratesInOrder(t *testing.T) {
	batch := uuid.New()
	recs := []model.MonthlyRecord{
		{Month: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), TotalBilling: model.N(100000)},
		{Month: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)},
	}
	src := NewRecordSource(batch, recs)
	cols := model.RecordColumns()

	var rows [][]any
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			t.Fatalf("Values: %v", err)
		}
		if len(vals) != len(cols) {
			t.Fatalf("got %d values for %d columns", len(vals), len(cols))
		}
		rows = append(rows, vals)
	}
	if src.Err() != nil {
		t.Fatalf("Err: %v", src.Err())
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != batch {
		t.Errorf("batch id not first column: %v", rows[0][0])
	}
	if p, ok := rows[0][2].(*float64); !ok || p == nil || *p != 100000 {
		t.Errorf("total_billing = %v", rows[0][2])
	}
	if p, ok := rows[1][2].(*float64); !ok || p != nil {
		t.Errorf("missing total_billing should be a nil *float64, got %v", rows[1][2])
	}
}
