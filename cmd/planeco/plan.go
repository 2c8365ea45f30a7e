package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sefallone/Plan-eco/internal/logging"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run load and validation report (no writes)",
	RunE:  runPlan,
}

func init() {
	addInputFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	opts := prepare(log, cfg.Validate)
	ds := loadDataset(log, opts)
	sum := ds.Summary()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== planeco plan ===")
	fmt.Fprintf(out, "Source:     %s\n", sum.Source)
	fmt.Fprintf(out, "SHA-256:    %s\n", sum.SHA256)
	fmt.Fprintf(out, "Batch:      %s\n", sum.BatchID)
	fmt.Fprintf(out, "Rows read:  %d\n", sum.RowsRead)
	fmt.Fprintf(out, "Records:    %d\n", sum.Records)
	fmt.Fprintf(out, "Dropped:    %d\n", sum.RowsDropped)
	fmt.Fprintf(out, "Months:     %s .. %s\n", sum.FirstMonth.Format("2006-01"), sum.LastMonth.Format("2006-01"))
	fmt.Fprintf(out, "Years:      %v\n", ds.Years())

	ws := ds.Warnings()
	fmt.Fprintf(out, "\nWarnings: %d\n", len(ws))
	for _, w := range ws {
		fmt.Fprintf(out, "  %s\n", w)
	}
	return nil
}
