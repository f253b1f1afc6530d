package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slabclass/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logFile string

	// Table source flags
	configPath string
	presetName string
	rangeFlags []string
)

var closeLog = func() error { return nil }

var rootCmd = &cobra.Command{
	Use:   "slabclassctl",
	Short: "Build, inspect and generate allocator size-class tables",
	Long: `slabclassctl builds a size-class table from a list of ranges and
answers questions about it: which class serves a request, how large a class is,
how much memory each class can waste, and whether the ranges overlap. It also
writes the table out as Go source.

The table comes from a built-in preset (default "reference"), a YAML file
(--config), or ranges given on the command line (--range start:end:step).`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append structured logs to this file")

	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "YAML file listing the ranges")
	rootCmd.PersistentFlags().
		StringVarP(&presetName, "preset", "p", "", "Built-in range list (reference, nonoverlapping)")
	rootCmd.PersistentFlags().
		StringArrayVarP(&rangeFlags, "range", "r", nil, "Range as start:end:step (repeatable, in order)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging routes the structured logger to stderr when verbose, or to
// --log-file when given.
func initLogging() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	c, err := logger.Init(logger.Options{
		Enabled: verbose || logFile != "",
		File:    logFile,
		Level:   level,
		JSON:    logFile != "",
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	closeLog = c
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
