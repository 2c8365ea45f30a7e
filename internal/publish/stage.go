package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sefallone/Plan-eco/internal/db"
	"github.com/sefallone/Plan-eco/internal/loader"
	"github.com/sefallone/Plan-eco/internal/model"
)

// StageResult holds metrics from the stage phase.
type StageResult struct {
	Records  int64
	Warnings int64
	Duration time.Duration
}

var warningColumns = []string{"batch_id", "seq", "kind", "row_num", "col", "message"}

// Stage COPY-loads the dataset's records and load warnings.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, ds *loader.Dataset) (*StageResult, error) {
	start := time.Now()
	batchID := ds.BatchID()

	records, err := pool.CopyFrom(ctx,
		pgx.Identifier{"report", "monthly_records"},
		model.RecordColumns(),
		db.NewRecordSource(batchID, ds.Records()),
	)
	if err != nil {
		return nil, fmt.Errorf("copy records: %w", err)
	}

	ws := ds.Warnings()
	rows := make([][]any, len(ws))
	for i, w := range ws {
		rows[i] = []any{batchID, i + 1, string(w.Kind), nilIfZero(w.Row), nilIfEmpty(w.Column), w.Message}
	}
	warnings, err := pool.CopyFrom(ctx,
		pgx.Identifier{"report", "load_warnings"},
		warningColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return nil, fmt.Errorf("copy warnings: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("records", records).
		Int64("warnings", warnings).
		Str("duration", dur.String()).
		Msg("staging complete")

	return &StageResult{Records: records, Warnings: warnings, Duration: dur}, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nilIfZero(n int) *int32 {
	if n == 0 {
		return nil
	}
	v := int32(n)
	return &v
}
