package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sefallone/Plan-eco/internal/config"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "planeco",
	Short: "Billing projection loader, KPI reports and publisher",
	Long: "Loads the monthly billing projection (built-in, .xlsx or .parquet), " +
		"computes yearly KPIs and growth, and exports, publishes or serves the results.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("PLANECO_DB_URL"), "Postgres connection string (or set PLANECO_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&configPath, "config", "", "YAML file with sheet, month_names and column_aliases")
}

// addInputFlags registers the flags shared by every command that loads a
// dataset.
func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Input .xlsx or .parquet file (default: built-in projection)")
	f.StringVar(&cfg.Sheet, "sheet", "", "Worksheet name (default: first sheet)")
}
