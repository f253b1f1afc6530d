package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slabclass/internal/emit"
	"github.com/joshuapare/slabclass/internal/logger"
)

var (
	genOutput   string
	genPackage  string
	genPerLine  int
	genFullSync bool
)

func init() {
	cmd := newGenCmd()
	cmd.Flags().StringVarP(&genOutput, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&genPackage, "package", "sizeclass", "Package clause of the generated file")
	cmd.Flags().IntVar(&genPerLine, "per-line", 8, "Table values per line")
	cmd.Flags().BoolVar(&genFullSync, "full-sync", false, "Flush past the drive cache where supported")
	rootCmd.AddCommand(cmd)
}

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go source for the table",
		Long: `The gen command writes the table as Go source: a NumClasses constant, the
class sizes as an array literal, and the SizeClass and SizeFromClass lookups.

Example:
  slabclassctl gen
  slabclassctl gen --config ranges.yaml --package alloc -o zsizeclasses.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen()
		},
	}
	return cmd
}

func runGen() error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	ranges := make([]string, 0, len(tbl.Ranges()))
	for _, r := range tbl.Ranges() {
		ranges = append(ranges, r.String())
	}
	src, err := emit.Source(tbl.Sizes(), emit.Options{
		Package:   genPackage,
		Generator: "slabclassctl gen",
		Config:    tbl.Name(),
		Ranges:    ranges,
		PerLine:   genPerLine,
	})
	if err != nil {
		return err
	}

	if genOutput == "" {
		_, err := os.Stdout.Write(src)
		return err
	}
	if err := emit.WriteFile(genOutput, src, genFullSync); err != nil {
		return err
	}
	logger.Info("generated", "path", genOutput, "classes", tbl.Len())
	printInfo("Wrote %d classes to %s\n", tbl.Len(), genOutput)
	return nil
}
