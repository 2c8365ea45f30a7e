package loader

import (
	"github.com/google/uuid"

	"github.com/sefallone/Plan-eco/internal/metrics"
	"github.com/sefallone/Plan-eco/internal/model"
)

// Dataset is the result of one load. It is never mutated after Load
// returns; a new load produces a new Dataset.
type Dataset struct {
	batchID  uuid.UUID
	source   string
	sha256   string
	records  []model.MonthlyRecord
	warnings []Warning
	summary  model.LoadSummary
}

// Records returns a copy of the records, sorted by month ascending.
func (d *Dataset) Records() []model.MonthlyRecord {
	out := make([]model.MonthlyRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Warnings returns a copy of the load warnings in the order found.
func (d *Dataset) Warnings() []Warning {
	out := make([]Warning, len(d.warnings))
	copy(out, d.warnings)
	return out
}

// Years lists the distinct years present, most recent first.
func (d *Dataset) Years() []int {
	return metrics.Years(d.records)
}

func (d *Dataset) Source() string             { return d.source }
func (d *Dataset) SHA256() string             { return d.sha256 }
func (d *Dataset) BatchID() uuid.UUID         { return d.batchID }
func (d *Dataset) Summary() model.LoadSummary { return d.summary }
