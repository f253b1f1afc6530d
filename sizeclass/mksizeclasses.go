//go:build ignore

// Mksizeclasses generates zsizeclasses.go from DefaultConfig.
// It is run via "go generate" in this directory.
//
//	go run mksizeclasses.go [-stdout] [-v]
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joshuapare/slabclass/internal/emit"
	"github.com/joshuapare/slabclass/internal/logger"
	"github.com/joshuapare/slabclass/sizeclass"
)

var (
	stdout  = flag.Bool("stdout", false, "write to stdout instead of zsizeclasses.go")
	verbose = flag.Bool("v", false, "log progress, not just problems")
)

func main() {
	flag.Parse()
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	if _, err := logger.Init(logger.Options{Enabled: true, Level: level}); err != nil {
		panic(err)
	}

	cfg := sizeclass.DefaultConfig
	if err := sizeclass.Validate(cfg.Ranges); err != nil {
		// The reference ranges overlap on purpose; record it and carry on.
		logger.Warn("range check", "config", cfg.Name, "err", err)
	}

	sizes := sizeclass.Build(cfg.Ranges)
	ranges := make([]string, len(cfg.Ranges))
	for i, r := range cfg.Ranges {
		ranges[i] = r.String()
	}
	src, err := emit.Source(sizes, emit.Options{
		Package:   "sizeclass",
		Generator: "mksizeclasses.go",
		Config:    cfg.Name,
		Ranges:    ranges,
	})
	if err != nil {
		logger.Error("emit", "err", err)
		os.Exit(1)
	}

	if *stdout {
		os.Stdout.Write(src)
		return
	}
	if err := emit.WriteFile("zsizeclasses.go", src, false); err != nil {
		logger.Error("write", "err", err)
		os.Exit(1)
	}
	logger.Info("generated", "config", cfg.Name, "classes", len(sizes))
}
