package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sefallone/Plan-eco/internal/loader"
	embedsql "github.com/sefallone/Plan-eco/internal/sql"
)

// RegisterResult holds what the register phase resolved.
type RegisterResult struct {
	// AlreadyPublished is true when a load with the same source hash is
	// published or active and force mode is off.
	AlreadyPublished bool
	// ExistingBatchID is the earlier load when AlreadyPublished is set.
	ExistingBatchID uuid.UUID
}

// Register records the load in report.loads. Sources without a hash (the
// built-in table) are always registered.
func Register(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, ds *loader.Dataset, force bool) (*RegisterResult, error) {
	sha := ds.SHA256()
	if sha != "" && !force {
		var existing uuid.UUID
		var status string
		err := pool.QueryRow(ctx, embedsql.LookupLoadBySHA, sha).Scan(&existing, &status)
		switch {
		case err == nil:
			return &RegisterResult{AlreadyPublished: true, ExistingBatchID: existing}, nil
		case !errors.Is(err, pgx.ErrNoRows):
			return nil, fmt.Errorf("lookup load by sha: %w", err)
		}
	}

	sum := ds.Summary()
	if _, err := pool.Exec(ctx, embedsql.RegisterLoad,
		ds.BatchID(), ds.Source(), sha, sum.Records, sum.Warnings, sum.FirstMonth, sum.LastMonth,
	); err != nil {
		return nil, fmt.Errorf("register load: %w", err)
	}

	log.Info().
		Str("batch_id", ds.BatchID().String()).
		Int("records", sum.Records).
		Int("warnings", sum.Warnings).
		Msg("load registered")
	return &RegisterResult{}, nil
}

// UpdateStatus updates the load status.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateLoadStatus, batchID, status)
	return err
}
