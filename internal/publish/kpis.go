package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sefallone/Plan-eco/internal/loader"
	"github.com/sefallone/Plan-eco/internal/metrics"
	"github.com/sefallone/Plan-eco/internal/model"
	embedsql "github.com/sefallone/Plan-eco/internal/sql"
)

// KPIResult holds metrics from the kpis phase.
type KPIResult struct {
	Years    int
	Rows     int
	Duration time.Duration
}

// WriteKPIs computes the snapshot and growth for every year in the dataset
// and writes them in a single batch.
func WriteKPIs(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, ds *loader.Dataset) (*KPIResult, error) {
	start := time.Now()
	records := ds.Records()
	years := ds.Years()

	batch, rows, err := kpiBatch(ds.BatchID(), records, years)
	if err != nil {
		return nil, err
	}

	br := pool.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, fmt.Errorf("write kpi statement %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("close kpi batch: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int("years", len(years)).
		Int("kpi_rows", rows).
		Dur("duration", dur).
		Msg("kpis written")

	return &KPIResult{Years: len(years), Rows: rows, Duration: dur}, nil
}

// kpiBatch queues one insert per (year, KPI) plus one growth row per year.
func kpiBatch(batchID uuid.UUID, records []model.MonthlyRecord, years []int) (*pgx.Batch, int, error) {
	batch := &pgx.Batch{}
	rows := 0
	for _, year := range years {
		snap, err := metrics.Summarize(records, year)
		if err != nil {
			return nil, 0, fmt.Errorf("summarize %d: %w", year, err)
		}
		for _, kv := range snap.KPIs() {
			batch.Queue(embedsql.InsertKPI, batchID, year, kv.Name, kv.Value.Ptr(), snap.Months)
			rows++
		}

		g, err := metrics.Growth(records, year)
		if err != nil {
			return nil, 0, fmt.Errorf("growth %d: %w", year, err)
		}
		var rate *float64
		if g.Defined {
			rate = &g.Rate
		}
		batch.Queue(embedsql.InsertGrowth, batchID, year, g.Current, g.Prior, rate, g.Defined, g.Reason)
	}
	return batch, rows, nil
}
