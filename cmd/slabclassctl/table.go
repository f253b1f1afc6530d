package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slabclass/internal/report"
	"github.com/joshuapare/slabclass/sizeclass"
)

func init() {
	rootCmd.AddCommand(newTableCmd())
}

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print every size class",
		Long: `The table command prints one row per size class: its size, the smallest
request it serves, and the worst-case bytes wasted when serving it. Classes
that no lookup can reach are marked shadowed.

Example:
  slabclassctl table
  slabclassctl table --preset nonoverlapping
  slabclassctl table --range 8:32:8 --range 32:64:16 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable()
		},
	}
	return cmd
}

type tableOutput struct {
	Name    string                `json:"name"`
	Ranges  []sizeclass.Range     `json:"ranges"`
	Classes []sizeclass.ClassStat `json:"classes"`
}

func runTable() error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(tableOutput{Name: tbl.Name(), Ranges: tbl.Ranges(), Classes: tbl.Stats()})
	}

	printInfo("Size classes for %s: %d\n\n", tbl.Name(), tbl.Len())
	if !quiet {
		report.New(os.Stdout).Table(tbl.Stats())
	}
	return nil
}
