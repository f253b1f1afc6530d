package sizeclass

import (
	"errors"
	"fmt"
	"math"
)

// MaxRangeClasses caps the sizes a single range may produce. Build skips
// larger ranges and Validate reports them.
const MaxRangeClasses = 1 << 16

// Range describes the sizes Start, Start+Step, Start+2*Step, ... strictly below End.
type Range struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
	Step  uint64 `json:"step"`
}

// Count returns the number of sizes r describes. A zero step or an empty
// interval describes none. Counts above math.MaxInt are clamped.
func (r Range) Count() int {
	if r.Step == 0 || r.Start >= r.End {
		return 0
	}
	n := (r.End-r.Start-1)/r.Step + 1
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// Last returns the largest size r describes. ok is false when r is empty.
func (r Range) Last() (last uint64, ok bool) {
	if r.Step == 0 || r.Start >= r.End {
		return 0, false
	}
	return r.Start + (r.End-r.Start-1)/r.Step*r.Step, true
}

// buildable reports whether Build expands r.
func (r Range) buildable() bool {
	n := r.Count()
	return n > 0 && n <= MaxRangeClasses
}

// Validate reports whether r is well formed.
func (r Range) Validate() error {
	if r.Step == 0 {
		return fmt.Errorf("%w %s: step must be positive", ErrBadRange, r)
	}
	if r.Start >= r.End {
		return fmt.Errorf("%w %s: start must be below end", ErrBadRange, r)
	}
	if r.Count() > MaxRangeClasses {
		return fmt.Errorf("%w %s: more than %d sizes", ErrBadRange, r, MaxRangeClasses)
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d,%d]", r.Start, r.End, r.Step)
}

func (r Range) appendTo(dst []uint64) []uint64 {
	if !r.buildable() {
		return dst
	}
	v := r.Start
	for n := r.Count(); n > 0; n-- {
		dst = append(dst, v)
		v += r.Step
	}
	return dst
}

// Build concatenates the sizes of each range in the order given.
//
// Within a range sizes ascend. Ranges are neither sorted nor deduplicated,
// so overlapping ranges yield a table that is not strictly increasing.
// Malformed ranges, and ranges above MaxRangeClasses sizes, contribute
// nothing; use Validate to detect them.
func Build(ranges []Range) []uint64 {
	total := 0
	for _, r := range ranges {
		if r.buildable() {
			total += r.Count()
		}
	}
	sizes := make([]uint64, 0, total)
	for _, r := range ranges {
		sizes = r.appendTo(sizes)
	}
	return sizes
}

// Validate checks every range and every join between consecutive non-empty
// ranges. All problems are returned together via errors.Join.
func Validate(ranges []Range) error {
	var errs []error
	var (
		prev    uint64
		prevIdx = -1
	)
	for i, r := range ranges {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("range %d: %w", i, err))
			continue
		}
		if prevIdx >= 0 && r.Start <= prev {
			errs = append(errs, fmt.Errorf("%w: range %d %s starts at %d, range %d ends at %d",
				ErrNotIncreasing, i, r, r.Start, prevIdx, prev))
		}
		prev, _ = r.Last()
		prevIdx = i
	}
	return errors.Join(errs...)
}
