// Package rangecfg loads size-class range lists from YAML files and
// command-line strings.
//
// A config file names the table and lists its ranges, either as
// [start, end, step] triples or as mappings:
//
//	name: reference
//	ranges:
//	  - [8, 512, 8]
//	  - {start: 512, end: 1024, step: 64}
//	  - [1k, 8k, 512]
//
// Every number may carry a binary unit suffix (k, m, g, KiB, ...).
package rangecfg

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/docker/go-units"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/slabclass/sizeclass"
)

var (
	// ErrBadSize indicates a size that is neither an integer nor a unit-suffixed size.
	ErrBadSize = errors.New("rangecfg: bad size")

	// ErrBadRange indicates a range that does not have exactly three parts.
	ErrBadRange = errors.New("rangecfg: bad range")

	// ErrNoRanges indicates a config file without ranges.
	ErrNoRanges = errors.New("rangecfg: no ranges")
)

// file is the on-disk layout.
type file struct {
	Name   string      `yaml:"name"`
	Ranges []rangeNode `yaml:"ranges"`
}

type rangeNode sizeclass.Range

// UnmarshalYAML accepts both the triple and the mapping form.
func (r *rangeNode) UnmarshalYAML(n *yaml.Node) error {
	var parts []string
	switch n.Kind {
	case yaml.SequenceNode:
		if err := n.Decode(&parts); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		if len(parts) != 3 {
			return fmt.Errorf("line %d: %w: want [start, end, step], got %d values",
				n.Line, ErrBadRange, len(parts))
		}
	case yaml.MappingNode:
		var m struct {
			Start string `yaml:"start"`
			End   string `yaml:"end"`
			Step  string `yaml:"step"`
		}
		if err := n.Decode(&m); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		parts = []string{m.Start, m.End, m.Step}
	default:
		return fmt.Errorf("line %d: %w: want a sequence or mapping", n.Line, ErrBadRange)
	}

	rg, err := parseParts(parts)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*r = rangeNode(rg)
	return nil
}

// Load reads a config file.
func Load(path string) (sizeclass.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sizeclass.Config{}, fmt.Errorf("rangecfg: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return sizeclass.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a config from YAML.
func Parse(data []byte) (sizeclass.Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return sizeclass.Config{}, fmt.Errorf("rangecfg: %w", err)
	}
	if len(f.Ranges) == 0 {
		return sizeclass.Config{}, ErrNoRanges
	}
	cfg := sizeclass.Config{Name: f.Name, Ranges: make([]sizeclass.Range, len(f.Ranges))}
	for i, r := range f.Ranges {
		cfg.Ranges[i] = sizeclass.Range(r)
	}
	return cfg, nil
}

// ParseRange parses "start:end:step". Commas work as separators too.
func ParseRange(s string) (sizeclass.Range, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ':' || r == ',' })
	if len(parts) != 3 {
		return sizeclass.Range{}, fmt.Errorf("%w %q: want start:end:step", ErrBadRange, s)
	}
	return parseParts(parts)
}

// ParseRanges parses each string with ParseRange.
func ParseRanges(ss []string) ([]sizeclass.Range, error) {
	out := make([]sizeclass.Range, 0, len(ss))
	for _, s := range ss {
		r, err := ParseRange(s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ParseSize parses a byte count such as "130", "16k" or "128KiB".
// Unit suffixes are binary: 1k is 1024. The number must be a whole one;
// "8.9" or "0.5k" is rejected rather than rounded.
func ParseSize(s string) (uint64, error) {
	t := strings.TrimSpace(s)
	if n, err := strconv.ParseUint(t, 10, 64); err == nil {
		return n, nil
	}
	// Only an integer mantissa followed by a unit goes to go-units,
	// which parses through float64.
	i := strings.IndexFunc(t, func(r rune) bool { return r < '0' || r > '9' })
	if i <= 0 || t[i] == '.' {
		return 0, fmt.Errorf("%w %q", ErrBadSize, s)
	}
	n, err := units.RAMInBytes(t)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w %q", ErrBadSize, s)
	}
	return uint64(n), nil
}

func parseParts(parts []string) (sizeclass.Range, error) {
	var v [3]uint64
	for i, p := range parts {
		n, err := ParseSize(p)
		if err != nil {
			return sizeclass.Range{}, err
		}
		v[i] = n
	}
	return sizeclass.Range{Start: v[0], End: v[1], Step: v[2]}, nil
}
