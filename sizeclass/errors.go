package sizeclass

import "errors"

var (
	// ErrOutOfRange indicates a requested size larger than every class in the table.
	ErrOutOfRange = errors.New("sizeclass: size exceeds largest size class")

	// ErrBadClass indicates a class index outside [0, Len()).
	ErrBadClass = errors.New("sizeclass: class index out of range")

	// ErrBadRange indicates a range with a zero step or start >= end.
	ErrBadRange = errors.New("sizeclass: bad range")

	// ErrNotIncreasing indicates ranges whose concatenation is not strictly increasing.
	ErrNotIncreasing = errors.New("sizeclass: size classes not strictly increasing")

	// ErrEmptyTable indicates a configuration that produces no size classes.
	ErrEmptyTable = errors.New("sizeclass: no size classes")
)
