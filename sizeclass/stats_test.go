package sizeclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsSmall(t *testing.T) {
	tbl := newTestTable(t, Config{Name: "small", Ranges: []Range{{8, 32, 8}, {32, 64, 16}}})
	stats := tbl.Stats()
	require.Len(t, stats, 5)

	assert.Equal(t, ClassStat{Class: 0, Size: 8, MinRequest: 1, MaxWaste: 7, MaxWastePct: 87.5}, stats[0])
	assert.Equal(t, ClassStat{Class: 1, Size: 16, MinRequest: 9, MaxWaste: 7, MaxWastePct: 43.75}, stats[1])
	assert.Equal(t, ClassStat{Class: 4, Size: 48, MinRequest: 33, MaxWaste: 15, MaxWastePct: 31.25}, stats[4])
}

func TestStatsMinRequestMatchesClass(t *testing.T) {
	tbl := newTestTable(t, ConfigReference)
	for _, st := range tbl.Stats() {
		if st.Shadowed {
			continue
		}
		c, err := tbl.Class(st.MinRequest)
		require.NoError(t, err)
		assert.Equal(t, st.Class, c, "MinRequest %d", st.MinRequest)
		if st.MinRequest > 1 {
			c, err = tbl.Class(st.MinRequest - 1)
			require.NoError(t, err)
			assert.Less(t, c, st.Class)
		}
	}
}

func TestStatsShadowed(t *testing.T) {
	stats := newTestTable(t, ConfigReference).Stats()
	st := stats[101]
	assert.True(t, st.Shadowed)
	assert.Equal(t, uint64(16384), st.Size)
	assert.Zero(t, st.MinRequest)

	// The class after the shadowed one serves everything above 30720.
	assert.Equal(t, uint64(30721), stats[102].MinRequest)
}

func TestStatsZeroSizeClass(t *testing.T) {
	stats := newTestTable(t, Config{Ranges: []Range{{0, 16, 8}}}).Stats()
	assert.Equal(t, ClassStat{Class: 0}, stats[0])
	assert.Equal(t, uint64(1), stats[1].MinRequest)
}

func TestSummarize(t *testing.T) {
	sum := newTestTable(t, ConfigReference).Summarize()
	assert.Equal(t, "reference", sum.Name)
	assert.Equal(t, 116, sum.Classes)
	assert.Equal(t, 6, sum.Ranges)
	assert.Equal(t, uint64(8), sum.MinSize)
	assert.Equal(t, uint64(245760), sum.MaxSize)
	assert.False(t, sum.Increasing)
	assert.Equal(t, []int{101}, sum.Shadowed)
	assert.InDelta(t, 87.5, sum.MaxWastePct, 1e-9)
	assert.Greater(t, sum.AvgWastePct, 0.0)
	assert.Less(t, sum.AvgWastePct, sum.MaxWastePct)

	clean := newTestTable(t, ConfigNonOverlapping).Summarize()
	assert.True(t, clean.Increasing)
	assert.Empty(t, clean.Shadowed)
}
