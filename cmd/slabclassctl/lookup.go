package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slabclass/internal/rangecfg"
	"github.com/joshuapare/slabclass/sizeclass"
)

func init() {
	rootCmd.AddCommand(newLookupCmd())
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <size>...",
		Short: "Find the size class serving each request size",
		Long: `The lookup command maps each request size to the smallest size class that
holds it. Sizes accept binary unit suffixes (16k, 128KiB). A size larger than
every class is reported as out of range and makes the command fail.

Example:
  slabclassctl lookup 130
  slabclassctl lookup 0 1k 16k 128k --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args)
		},
	}
	return cmd
}

type lookupResult struct {
	Request   string `json:"request"`
	Size      uint64 `json:"size"`
	Class     int    `json:"class"`
	ClassSize uint64 `json:"class_size,omitempty"`
	Waste     uint64 `json:"waste,omitempty"`
	Error     string `json:"error,omitempty"`
}

func runLookup(args []string) error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	results := make([]lookupResult, 0, len(args))
	failed := 0
	for _, arg := range args {
		size, err := rangecfg.ParseSize(arg)
		if err != nil {
			return err
		}
		res := lookupResult{Request: arg, Size: size}
		res.Class, err = tbl.Class(size)
		if err != nil {
			res.Error = err.Error()
			failed++
		} else {
			res.ClassSize, _ = tbl.Size(res.Class)
			res.Waste = res.ClassSize - size
		}
		results = append(results, res)
	}

	if jsonOut {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Error != "" {
				printError("%s: %s\n", res.Request, res.Error)
				continue
			}
			printInfo("%s -> class %d (%d bytes, %d wasted)\n",
				res.Request, res.Class, res.ClassSize, res.Waste)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sizes above %d bytes: %w",
			failed, len(args), tbl.MaxSize(), sizeclass.ErrOutOfRange)
	}
	return nil
}
