// Package emit renders a size-class table as Go source.
//
// The output holds the table as a fixed-size array literal together with
// the NumClasses constant and the SizeClass / SizeFromClass lookups that
// read it. The result is passed through go/format.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strconv"
)

// ErrNoSizes indicates an empty table.
var ErrNoSizes = errors.New("emit: no size classes to emit")

// Options controls the generated file.
type Options struct {
	Package   string   // package clause; default "sizeclass"
	Generator string   // program named in the DO NOT EDIT header; default "mksizeclasses.go"
	Config    string   // config name recorded in the header comment
	Ranges    []string // ranges recorded in the header comment
	PerLine   int      // array values per line; default 8
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = "sizeclass"
	}
	if o.Generator == "" {
		o.Generator = "mksizeclasses.go"
	}
	if o.PerLine <= 0 {
		o.PerLine = 8
	}
	return o
}

// Source returns the formatted Go source for sizes.
func Source(sizes []uint64, opts Options) ([]byte, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}
	opts = opts.withDefaults()

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by %s; DO NOT EDIT.\n\n", opts.Generator)
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)
	writeHeader(&b, opts)
	writeTable(&b, sizes, opts.PerLine)
	writeDecls(&b)

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("emit: format: %w", err)
	}
	return src, nil
}

func writeHeader(w io.Writer, opts Options) {
	if opts.Config == "" && len(opts.Ranges) == 0 {
		return
	}
	name := opts.Config
	if name == "" {
		name = "custom"
	}
	fmt.Fprintf(w, "// Size classes for config %q", name)
	if len(opts.Ranges) == 0 {
		fmt.Fprint(w, ".\n\n")
		return
	}
	fmt.Fprint(w, ", built from the ranges\n//\n")
	for _, r := range opts.Ranges {
		fmt.Fprintf(w, "//\t%s\n", r)
	}
	fmt.Fprint(w, "\n")
}

// writeTable emits the array literal.
func writeTable(w io.Writer, sizes []uint64, perLine int) {
	fmt.Fprint(w, "// NumClasses is the number of size classes.\n")
	fmt.Fprintf(w, "const NumClasses = %d\n\n", len(sizes))
	fmt.Fprint(w, "// classToSize holds the byte size of each class.\n")
	fmt.Fprint(w, "var classToSize = [NumClasses]uint64{\n")
	line := make([]byte, 0, 128)
	for i, s := range sizes {
		if i%perLine == 0 {
			line = append(line[:0], '\t')
		} else {
			line = append(line, ' ')
		}
		line = strconv.AppendUint(line, s, 10)
		line = append(line, ',')
		if i%perLine == perLine-1 || i == len(sizes)-1 {
			line = append(line, '\n')
			w.Write(line)
		}
	}
	fmt.Fprint(w, "}\n\n")
}

// writeDecls emits the lookups over classToSize.
func writeDecls(w io.Writer) {
	fmt.Fprint(w, `// SizeClass returns the first class whose size is >= size, or NumClasses
// if size exceeds every class.
func SizeClass(size uint64) int {
	c := 0
	for c < NumClasses && classToSize[c] < size {
		c++
	}
	return c
}

// SizeFromClass returns the byte size of class, or 0 if class is not in
// [0, NumClasses).
func SizeFromClass(class int) uint64 {
	if uint(class) >= NumClasses {
		return 0
	}
	return classToSize[class]
}
`)
}
