package main

import (
	"errors"
	"fmt"

	"github.com/joshuapare/slabclass/internal/logger"
	"github.com/joshuapare/slabclass/internal/rangecfg"
	"github.com/joshuapare/slabclass/sizeclass"
)

var errConflictingSources = errors.New("use only one of --config, --preset and --range")

// loadConfig resolves the table source flags.
func loadConfig() (sizeclass.Config, error) {
	set := 0
	for _, on := range []bool{configPath != "", presetName != "", len(rangeFlags) > 0} {
		if on {
			set++
		}
	}
	if set > 1 {
		return sizeclass.Config{}, errConflictingSources
	}

	switch {
	case configPath != "":
		printVerbose("Loading ranges: %s\n", configPath)
		cfg, err := rangecfg.Load(configPath)
		if err != nil {
			return sizeclass.Config{}, err
		}
		if cfg.Name == "" {
			cfg.Name = configPath
		}
		return cfg, nil
	case len(rangeFlags) > 0:
		rs, err := rangecfg.ParseRanges(rangeFlags)
		if err != nil {
			return sizeclass.Config{}, err
		}
		return sizeclass.Config{Name: "command-line", Ranges: rs}, nil
	case presetName != "":
		cfg, ok := sizeclass.ConfigByName(presetName)
		if !ok {
			return sizeclass.Config{}, fmt.Errorf("unknown preset %q", presetName)
		}
		return cfg, nil
	default:
		return sizeclass.DefaultConfig, nil
	}
}

// loadTable builds the table selected by the source flags.
func loadTable() (*sizeclass.Table, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	tbl, err := sizeclass.NewTable(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("built table", "config", tbl.Name(), "ranges", len(cfg.Ranges), "classes", tbl.Len())
	if err := tbl.Validate(); err != nil {
		logger.Warn("range check", "config", tbl.Name(), "err", err)
	}
	return tbl, nil
}
