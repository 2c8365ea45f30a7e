package model

import "time"

// LoadSummary captures metrics from a single dataset load.
type LoadSummary struct {
	BatchID     string
	Source      string
	SHA256      string
	RowsRead    int
	Records     int
	RowsDropped int
	Warnings    int
	FirstMonth  time.Time
	LastMonth   time.Time
	Duration    time.Duration
}
