// Package report renders size-class tables and statistics as text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/docker/go-units"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/slabclass/sizeclass"
)

// Printer writes reports to w with digit-grouped numbers.
type Printer struct {
	w io.Writer
	p *message.Printer
}

// New returns a Printer that writes to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w, p: message.NewPrinter(language.English)}
}

// Bytes formats n with thousands separators, e.g. 245,760.
func (p *Printer) Bytes(n uint64) string {
	return p.p.Sprintf("%d", n)
}

// Human formats n with a binary unit, e.g. 240KiB.
func Human(n uint64) string {
	return units.BytesSize(float64(n))
}

// Table writes one row per class.
func (p *Printer) Table(stats []sizeclass.ClassStat) {
	fmt.Fprintf(p.w, "%5s  %9s  %9s  %9s  %9s  %7s\n",
		"CLASS", "SIZE", "HUMAN", "MIN REQ", "MAX WASTE", "WASTE")
	for _, st := range stats {
		if st.Shadowed {
			fmt.Fprintf(p.w, "%5d  %9s  %9s  %9s  %9s  %7s  shadowed\n",
				st.Class, p.Bytes(st.Size), Human(st.Size), "-", "-", "-")
			continue
		}
		fmt.Fprintf(p.w, "%5d  %9s  %9s  %9s  %9s  %6.1f%%\n",
			st.Class, p.Bytes(st.Size), Human(st.Size),
			p.Bytes(st.MinRequest), p.Bytes(st.MaxWaste), st.MaxWastePct)
	}
}

// Summary writes aggregate statistics.
func (p *Printer) Summary(s sizeclass.Summary) {
	fmt.Fprintf(p.w, "Config:      %s\n", s.Name)
	fmt.Fprintf(p.w, "Ranges:      %d\n", s.Ranges)
	fmt.Fprintf(p.w, "Classes:     %d\n", s.Classes)
	fmt.Fprintf(p.w, "Smallest:    %s bytes\n", p.Bytes(s.MinSize))
	fmt.Fprintf(p.w, "Largest:     %s bytes (%s)\n", p.Bytes(s.MaxSize), Human(s.MaxSize))
	fmt.Fprintf(p.w, "Increasing:  %t\n", s.Increasing)
	if len(s.Shadowed) > 0 {
		fmt.Fprintf(p.w, "Shadowed:    %s\n", joinInts(s.Shadowed))
	}
	fmt.Fprintf(p.w, "Max waste:   %.1f%%\n", s.MaxWastePct)
	fmt.Fprintf(p.w, "Avg waste:   %.1f%%\n", s.AvgWastePct)
}

// Issues writes one line per error, unpacking errors.Join results.
func (p *Printer) Issues(err error) {
	for _, e := range Flatten(err) {
		fmt.Fprintf(p.w, "  ✗ %v\n", e)
	}
}

// Flatten unpacks errors.Join trees into their leaves.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	j, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range j.Unwrap() {
		out = append(out, Flatten(e)...)
	}
	return out
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, ", ")
}
