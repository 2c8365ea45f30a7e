package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sefallone/Plan-eco/internal/loader"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Options control a publish run.
type Options struct {
	Activate bool // mark this load active, demoting any previous active load
	Force    bool // publish even if the same source hash was published before
}

// Summary captures metrics from a single publish run.
type Summary struct {
	BatchID        string
	Skipped        bool
	RecordsCopied  int64
	WarningsCopied int64
	Years          int
	KPIRows        int
	DurationStage  time.Duration
	DurationKPIs   time.Duration
	DurationTotal  time.Duration
}

// Run executes the publish pipeline: register → stage → kpis → finalize.
// A failure after register removes the partially written load.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, ds *loader.Dataset, opts Options) (*Summary, error) {
	totalStart := time.Now()
	batchID := ds.BatchID()

	// Phase 1: Register
	log.Info().Str("source", ds.Source()).Str("batch_id", batchID.String()).Msg("registering load")
	reg, err := Register(ctx, pool, log, ds, opts.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "register", Err: err}
	}
	if reg.AlreadyPublished {
		log.Info().
			Str("sha256", ds.SHA256()).
			Str("existing_batch_id", reg.ExistingBatchID.String()).
			Msg("source already published, skipping (use --force to republish)")
		return &Summary{
			BatchID:       reg.ExistingBatchID.String(),
			Skipped:       true,
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	fail := func(phase string, err error) (*Summary, error) {
		if cerr := Cleanup(ctx, pool, log, batchID); cerr != nil {
			log.Warn().Err(cerr).Msg("cleanup after failure failed (non-fatal)")
		}
		return nil, &PipelineError{Phase: phase, Err: err}
	}

	// Phase 2: Stage records and warnings
	log.Info().Msg("copying records")
	stage, err := Stage(ctx, pool, log, ds)
	if err != nil {
		return fail("stage", err)
	}
	if err := UpdateStatus(ctx, pool, batchID, "staged"); err != nil {
		return fail("stage", err)
	}

	// Phase 3: KPI snapshots and growth per year
	log.Info().Msg("computing kpis")
	kpis, err := WriteKPIs(ctx, pool, log, ds)
	if err != nil {
		return fail("kpis", err)
	}

	// Phase 4: Finalize
	log.Info().Msg("finalizing")
	if _, err := Finalize(ctx, pool, log, batchID, opts.Activate); err != nil {
		return fail("finalize", err)
	}

	summary := &Summary{
		BatchID:        batchID.String(),
		RecordsCopied:  stage.Records,
		WarningsCopied: stage.Warnings,
		Years:          kpis.Years,
		KPIRows:        kpis.Rows,
		DurationStage:  stage.Duration,
		DurationKPIs:   kpis.Duration,
		DurationTotal:  time.Since(totalStart),
	}

	log.Info().
		Int64("records", summary.RecordsCopied).
		Int64("warnings", summary.WarningsCopied).
		Int("years", summary.Years).
		Int("kpi_rows", summary.KPIRows).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("publish pipeline complete")

	return summary, nil
}
