package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slabclass/internal/report"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the table",
		Long: `The stats command shows the class count, smallest and largest class,
whether the table is strictly increasing, shadowed classes, and the worst and
average internal fragmentation across classes.

Example:
  slabclassctl stats
  slabclassctl stats --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
	return cmd
}

func runStats() error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	sum := tbl.Summarize()
	if jsonOut {
		return printJSON(sum)
	}
	if !quiet {
		report.New(os.Stdout).Summary(sum)
	}
	return nil
}
