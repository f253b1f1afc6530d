package sizeclass

// ClassStat describes the requests a class serves.
type ClassStat struct {
	Class int    `json:"class"`
	Size  uint64 `json:"size"`

	// MinRequest is the smallest request Class maps here. Zero when Shadowed.
	MinRequest uint64 `json:"min_request"`

	// MaxWaste is Size - MinRequest: the worst-case internal fragmentation.
	MaxWaste    uint64  `json:"max_waste"`
	MaxWastePct float64 `json:"max_waste_pct"`

	Shadowed bool `json:"shadowed,omitempty"`
}

// Summary aggregates ClassStat over a table.
type Summary struct {
	Name        string  `json:"name"`
	Classes     int     `json:"classes"`
	Ranges      int     `json:"ranges"`
	MinSize     uint64  `json:"min_size"`
	MaxSize     uint64  `json:"max_size"`
	Increasing  bool    `json:"increasing"`
	Shadowed    []int   `json:"shadowed,omitempty"`
	MaxWastePct float64 `json:"max_waste_pct"`
	AvgWastePct float64 `json:"avg_waste_pct"`
}

// Stats returns one ClassStat per class, in class order.
func (t *Table) Stats() []ClassStat {
	stats := make([]ClassStat, len(t.sizes))
	var hi uint64 // largest size among earlier classes
	for c, s := range t.sizes {
		st := ClassStat{Class: c, Size: s}
		if c > 0 && hi >= s {
			st.Shadowed = true
		} else {
			st.MinRequest = hi + 1
			if c == 0 {
				// Class 0 also serves zero-byte requests; waste is measured
				// from the smallest non-empty one.
				st.MinRequest = min(1, s)
			}
			st.MaxWaste = s - st.MinRequest
			if s > 0 {
				st.MaxWastePct = float64(st.MaxWaste) / float64(s) * 100
			}
		}
		stats[c] = st
		hi = max(hi, s)
	}
	return stats
}

// Summarize returns aggregate statistics for the table.
func (t *Table) Summarize() Summary {
	sum := Summary{
		Name:       t.name,
		Classes:    len(t.sizes),
		Ranges:     len(t.ranges),
		MinSize:    t.sizes[0],
		MaxSize:    t.maxSize,
		Increasing: t.Increasing(),
	}
	served := 0
	var total float64
	for _, st := range t.Stats() {
		sum.MinSize = min(sum.MinSize, st.Size)
		if st.Shadowed {
			sum.Shadowed = append(sum.Shadowed, st.Class)
			continue
		}
		served++
		total += st.MaxWastePct
		sum.MaxWastePct = max(sum.MaxWastePct, st.MaxWastePct)
	}
	if served > 0 {
		sum.AvgWastePct = total / float64(served)
	}
	return sum
}
