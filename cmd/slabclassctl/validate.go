package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slabclass/internal/report"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the ranges produce a strictly increasing table",
		Long: `The validate command checks each range (positive step, start below end)
and each join between ranges (every range starts above the last size of the
one before). It also lists classes that no lookup can reach.

The reference preset fails this check on purpose: its last two ranges both
start at 16384.

Example:
  slabclassctl validate
  slabclassctl validate --preset nonoverlapping
  slabclassctl validate --config ranges.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}
	return cmd
}

type validateOutput struct {
	Name       string   `json:"name"`
	Valid      bool     `json:"valid"`
	Increasing bool     `json:"increasing"`
	Shadowed   []int    `json:"shadowed,omitempty"`
	Issues     []string `json:"issues,omitempty"`
}

func runValidate() error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	verr := tbl.Validate()
	out := validateOutput{
		Name:       tbl.Name(),
		Valid:      verr == nil,
		Increasing: tbl.Increasing(),
		Shadowed:   tbl.Shadowed(),
	}
	for _, e := range report.Flatten(verr) {
		out.Issues = append(out.Issues, e.Error())
	}

	if jsonOut {
		if err := printJSON(out); err != nil {
			return err
		}
	} else {
		printInfo("Validating %s (%d ranges, %d classes)\n", tbl.Name(), len(tbl.Ranges()), tbl.Len())
		if out.Valid {
			printInfo("  ✓ Ranges valid\n")
		} else if !quiet {
			report.New(os.Stdout).Issues(verr)
		}
		for _, c := range out.Shadowed {
			size, _ := tbl.Size(c)
			printInfo("  ✗ class %d (%d bytes) is shadowed by an earlier class\n", c, size)
		}
	}

	if !out.Valid {
		return fmt.Errorf("%s: %d problem(s) found", tbl.Name(), len(out.Issues))
	}
	return nil
}
