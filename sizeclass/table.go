package sizeclass

//go:generate go run mksizeclasses.go

import (
	"fmt"
	"slices"
	"sync"
)

// Table is an immutable size-class table built from a Config.
// All methods are safe for concurrent use.
type Table struct {
	name    string
	ranges  []Range
	sizes   []uint64
	maxSize uint64
}

// NewTable builds the table for cfg.
func NewTable(cfg Config) (*Table, error) {
	sizes := Build(cfg.Ranges)
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: config %q", ErrEmptyTable, cfg.Name)
	}
	return &Table{
		name:    cfg.Name,
		ranges:  slices.Clone(cfg.Ranges),
		sizes:   sizes,
		maxSize: slices.Max(sizes),
	}, nil
}

// Default returns the table for DefaultConfig, built on first use.
var Default = sync.OnceValue(func() *Table {
	t, err := NewTable(DefaultConfig)
	if err != nil {
		panic(err)
	}
	return t
})

// Name returns the name of the config the table was built from.
func (t *Table) Name() string { return t.name }

// Len returns the number of size classes.
func (t *Table) Len() int { return len(t.sizes) }

// MaxSize returns the largest size any class holds. Requests above it are
// out of range.
func (t *Table) MaxSize() uint64 { return t.maxSize }

// Ranges returns a copy of the ranges the table was built from.
func (t *Table) Ranges() []Range { return slices.Clone(t.ranges) }

// Sizes returns a copy of the class sizes in class order.
func (t *Table) Sizes() []uint64 { return slices.Clone(t.sizes) }

// Class returns the first class whose size is >= size.
//
// Classes are scanned in order, so the result is the smallest fitting class
// only when the table is strictly increasing. A size above MaxSize returns
// Len() and an error wrapping ErrOutOfRange.
func (t *Table) Class(size uint64) (int, error) {
	for c, s := range t.sizes {
		if s >= size {
			return c, nil
		}
	}
	return len(t.sizes), fmt.Errorf("%w: %d > %d", ErrOutOfRange, size, t.maxSize)
}

// Size returns the byte size of class. An index outside [0, Len()) returns
// an error wrapping ErrBadClass.
func (t *Table) Size(class int) (uint64, error) {
	if class < 0 || class >= len(t.sizes) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrBadClass, class, len(t.sizes))
	}
	return t.sizes[class], nil
}

// Increasing reports whether every class is larger than the one before it.
func (t *Table) Increasing() bool {
	for i := 1; i < len(t.sizes); i++ {
		if t.sizes[i] <= t.sizes[i-1] {
			return false
		}
	}
	return true
}

// Shadowed returns the classes Class never returns: those with an earlier
// class at least as large.
func (t *Table) Shadowed() []int {
	var out []int
	var hi uint64
	for c, s := range t.sizes {
		if c > 0 && hi >= s {
			out = append(out, c)
		}
		hi = max(hi, s)
	}
	return out
}

// Validate checks the ranges the table was built from. See Validate.
func (t *Table) Validate() error {
	return Validate(t.ranges)
}
