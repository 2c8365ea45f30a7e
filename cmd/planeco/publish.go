package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sefallone/Plan-eco/internal/db"
	"github.com/sefallone/Plan-eco/internal/exitcode"
	"github.com/sefallone/Plan-eco/internal/logging"
	"github.com/sefallone/Plan-eco/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Load the dataset and publish records, warnings and KPIs to Postgres",
	RunE:  runPublish,
}

func init() {
	addInputFlags(publishCmd)
	f := publishCmd.Flags()
	f.BoolVar(&cfg.Activate, "activate", false, "Mark this load active, demoting the previous active load")
	f.BoolVar(&cfg.Force, "force", false, "Publish even if this source hash was already published")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	opts := prepare(log, cfg.ValidateWithDSN)
	ds := loadDataset(log, opts)

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := publish.Run(ctx, pool, log, ds, publish.Options{Activate: cfg.Activate, Force: cfg.Force})
	if err != nil {
		var pe *publish.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("publish failed")
			if pe.Phase == "stage" {
				os.Exit(exitcode.CopyError)
			}
			os.Exit(exitcode.PublishError)
		}
		log.Error().Err(err).Msg("publish failed")
		os.Exit(exitcode.PublishError)
	}

	if summary.Skipped {
		fmt.Fprintf(cmd.OutOrStdout(), "Already published as %s; use --force to publish again\n", summary.BatchID)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Publish complete: %d records, %d warnings, %d KPI rows over %d years (%.1fs)\n",
		summary.RecordsCopied, summary.WarningsCopied, summary.KPIRows, summary.Years, summary.DurationTotal.Seconds())
	return nil
}
