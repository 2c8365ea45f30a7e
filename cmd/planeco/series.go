package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sefallone/Plan-eco/internal/exitcode"
	"github.com/sefallone/Plan-eco/internal/logging"
	"github.com/sefallone/Plan-eco/internal/metrics"
	"github.com/sefallone/Plan-eco/internal/model"
	"github.com/sefallone/Plan-eco/internal/report"
)

var seriesCategory string

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Print one category's monthly series in long form",
	RunE:  runSeries,
}

func init() {
	addInputFlags(seriesCmd)
	f := seriesCmd.Flags()
	f.StringVar(&seriesCategory, "category", "", "Category name (required)")
	f.IntVar(&cfg.Year, "year", 0, "Year to show (0 = most recent)")
	f.StringVar(&cfg.Lang, "lang", "es", "Number formatting: es or en")
	_ = seriesCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(seriesCmd)
}

func runSeries(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	if _, ok := model.CategoryByName(seriesCategory); !ok {
		names := make([]string, len(model.AllCategories))
		for i, c := range model.AllCategories {
			names[i] = c.Name
		}
		log.Error().Str("category", seriesCategory).Strs("categories", names).Msg("unknown category")
		os.Exit(exitcode.UsageError)
	}
	p, err := report.Printer(cfg.Lang)
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	opts := prepare(log, cfg.Validate)
	ds := loadDataset(log, opts)

	year := resolveYear(ds)
	records := metrics.FilterYear(ds.Records(), year)
	if len(records) == 0 {
		exitMetrics(log, ds, &metrics.EmptyFilterError{Year: year})
	}
	rows, err := metrics.Melt(records, seriesCategory)
	if err != nil {
		exitMetrics(log, ds, err)
	}
	return report.WriteSeries(cmd.OutOrStdout(), p, rows)
}
