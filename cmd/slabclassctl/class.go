package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newClassCmd())
}

func newClassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class <index>...",
		Short: "Print the byte size of each class index",
		Long: `The class command prints the size of each given class index.

Example:
  slabclassctl class 0 93 101 115`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClass(args)
		},
	}
	return cmd
}

type classResult struct {
	Class int    `json:"class"`
	Size  uint64 `json:"size"`
}

func runClass(args []string) error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	results := make([]classResult, 0, len(args))
	for _, arg := range args {
		c, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid class index %q: %w", arg, err)
		}
		size, err := tbl.Size(c)
		if err != nil {
			return err
		}
		results = append(results, classResult{Class: c, Size: size})
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, res := range results {
		printInfo("class %d: %d bytes\n", res.Class, res.Size)
	}
	return nil
}
