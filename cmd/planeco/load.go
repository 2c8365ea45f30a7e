package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/sefallone/Plan-eco/internal/exitcode"
	"github.com/sefallone/Plan-eco/internal/loader"
	"github.com/sefallone/Plan-eco/internal/logging"
	"github.com/sefallone/Plan-eco/internal/metrics"
)

// prepare applies --config and returns the loader options, exiting with a
// usage error on bad configuration.
func prepare(log zerolog.Logger, validate func() error) loader.Options {
	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	opts, err := cfg.LoaderOptions()
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	return opts
}

// loadDataset loads the configured source and logs its warnings.
func loadDataset(log zerolog.Logger, opts loader.Options) *loader.Dataset {
	src, err := loader.Open(cfg.FilePath, cfg.Sheet)
	if err != nil {
		log.Error().Err(err).Msg("open source failed")
		os.Exit(exitcode.LoadError)
	}
	ds, err := loader.Load(src, opts)
	if err != nil {
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.LoadError)
	}
	logging.LoadWarnings(log, ds.Source(), ds.Warnings())

	sum := ds.Summary()
	log.Info().
		Str("source", sum.Source).
		Str("batch_id", sum.BatchID).
		Int("rows_read", sum.RowsRead).
		Int("records", sum.Records).
		Int("dropped", sum.RowsDropped).
		Dur("duration", sum.Duration).
		Msg("dataset loaded")
	return ds
}

// resolveYear maps --year 0 to the most recent year in ds.
func resolveYear(ds *loader.Dataset) int {
	if cfg.Year != 0 {
		return cfg.Year
	}
	return ds.Years()[0]
}

// exitMetrics reports a metrics error, listing the available years when the
// chosen year has no data.
func exitMetrics(log zerolog.Logger, ds *loader.Dataset, err error) {
	var empty *metrics.EmptyFilterError
	if errors.As(err, &empty) {
		log.Error().Int("year", empty.Year).Ints("available", ds.Years()).Msg("no data for the selected year, choose another")
		os.Exit(exitcode.EmptyYear)
	}
	log.Error().Err(err).Msg("metrics failed")
	os.Exit(exitcode.UsageError)
}
