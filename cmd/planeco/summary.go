package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sefallone/Plan-eco/internal/exitcode"
	"github.com/sefallone/Plan-eco/internal/logging"
	"github.com/sefallone/Plan-eco/internal/metrics"
	"github.com/sefallone/Plan-eco/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the KPI table and growth for one year",
	RunE:  runSummary,
}

func init() {
	addInputFlags(summaryCmd)
	f := summaryCmd.Flags()
	f.IntVar(&cfg.Year, "year", 0, "Year to summarize (0 = most recent)")
	f.StringVar(&cfg.Lang, "lang", "es", "Number formatting: es or en")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	p, err := report.Printer(cfg.Lang)
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	opts := prepare(log, cfg.Validate)
	ds := loadDataset(log, opts)

	year := resolveYear(ds)
	records := ds.Records()
	snap, err := metrics.Summarize(records, year)
	if err != nil {
		exitMetrics(log, ds, err)
	}
	growth, err := metrics.Growth(records, year)
	if err != nil {
		exitMetrics(log, ds, err)
	}
	return report.WriteSummary(cmd.OutOrStdout(), p, snap, growth)
}
