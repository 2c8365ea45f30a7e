package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sefallone/Plan-eco/internal/exitcode"
	"github.com/sefallone/Plan-eco/internal/logging"
	"github.com/sefallone/Plan-eco/internal/metrics"
	"github.com/sefallone/Plan-eco/internal/parquetio"
	"github.com/sefallone/Plan-eco/internal/sheet"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write records and the long-form view to Parquet or xlsx",
	RunE:  runExport,
}

func init() {
	addInputFlags(exportCmd)
	f := exportCmd.Flags()
	f.StringVar(&cfg.OutDir, "out", "", "Output directory (required)")
	f.StringVar(&cfg.Format, "format", "parquet", "Output format: parquet or xlsx")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	opts := prepare(log, cfg.ValidateExport)
	ds := loadDataset(log, opts)

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		log.Error().Err(err).Str("out", cfg.OutDir).Msg("create output dir failed")
		os.Exit(exitcode.ExportError)
	}

	records := ds.Records()
	long := metrics.MeltAll(records)

	var files []string
	switch cfg.Format {
	case "xlsx":
		path := filepath.Join(cfg.OutDir, "planeco.xlsx")
		if err := sheet.WriteWorkbook(path, records, long); err != nil {
			log.Error().Err(err).Msg("xlsx export failed")
			os.Exit(exitcode.ExportError)
		}
		files = append(files, path)
	default:
		recPath := filepath.Join(cfg.OutDir, "records.parquet")
		longPath := filepath.Join(cfg.OutDir, "long.parquet")
		if err := parquetio.WriteRecords(recPath, records); err != nil {
			log.Error().Err(err).Msg("parquet export failed")
			os.Exit(exitcode.ExportError)
		}
		if err := parquetio.WriteLong(longPath, long); err != nil {
			log.Error().Err(err).Msg("parquet export failed")
			os.Exit(exitcode.ExportError)
		}
		files = append(files, recPath, longPath)
	}

	log.Info().
		Strs("files", files).
		Int("records", len(records)).
		Int("long_rows", len(long)).
		Msg("export complete")
	return nil
}
