package publish

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/sefallone/Plan-eco/internal/sql"
)

// Cleanup deletes a load and, by cascade, its records, warnings and KPIs.
func Cleanup(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID) error {
	start := time.Now()

	tag, err := pool.Exec(ctx, embedsql.DeleteLoadRows, batchID)
	if err != nil {
		return err
	}

	log.Info().
		Int64("loads_deleted", tag.RowsAffected()).
		Dur("duration", time.Since(start)).
		Msg("load cleanup complete")

	return nil
}
