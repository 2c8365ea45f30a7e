package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/sefallone/Plan-eco/internal/sql"
)

// Finalize marks the load published or active and runs ANALYZE.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID, activate bool) (time.Duration, error) {
	start := time.Now()

	if activate {
		// Demote the previously active load
		tag, err := pool.Exec(ctx, embedsql.DeactivateOlderLoads, batchID)
		if err != nil {
			return 0, fmt.Errorf("deactivate older loads: %w", err)
		}
		log.Info().Int64("deactivated", tag.RowsAffected()).Msg("older loads deactivated")

		if _, err := pool.Exec(ctx, embedsql.ActivateLoad, batchID); err != nil {
			return 0, fmt.Errorf("activate load: %w", err)
		}
		log.Info().Str("batch_id", batchID.String()).Msg("load activated")
	} else {
		if err := UpdateStatus(ctx, pool, batchID, "published"); err != nil {
			return 0, fmt.Errorf("update status to published: %w", err)
		}
	}

	if _, err := pool.Exec(ctx, embedsql.AnalyzeReport); err != nil {
		return 0, fmt.Errorf("analyze report tables: %w", err)
	}
	log.Info().Msg("ANALYZE complete")

	return time.Since(start), nil
}
