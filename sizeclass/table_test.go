package sizeclass

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, cfg Config) *Table {
	t.Helper()
	tbl, err := NewTable(cfg)
	require.NoError(t, err)
	return tbl
}

func TestNewTableEmpty(t *testing.T) {
	_, err := NewTable(Config{Name: "empty", Ranges: []Range{{8, 8, 8}}})
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestTableDoesNotAliasInput(t *testing.T) {
	cfg := Config{Name: "small", Ranges: []Range{{8, 32, 8}}}
	tbl := newTestTable(t, cfg)
	cfg.Ranges[0].Step = 16

	assert.Equal(t, uint64(8), tbl.Ranges()[0].Step)

	sizes := tbl.Sizes()
	sizes[0] = 999
	got, err := tbl.Size(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), got)
}

func TestClassConcreteScenario(t *testing.T) {
	tbl := newTestTable(t, Config{Ranges: []Range{{8, 32, 8}, {32, 64, 16}}})
	require.Equal(t, []uint64{8, 16, 24, 32, 48}, tbl.Sizes())

	c, err := tbl.Class(10)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	size, err := tbl.Size(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), size)

	c, err = tbl.Class(8)
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = tbl.Class(48)
	require.NoError(t, err)
	assert.Equal(t, 4, c)

	c, err = tbl.Class(50)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, tbl.Len(), c)
	assert.Contains(t, err.Error(), "50 > 48")
}

func TestClassZeroSize(t *testing.T) {
	for _, cfg := range Configs {
		t.Run(cfg.Name, func(t *testing.T) {
			c, err := newTestTable(t, cfg).Class(0)
			require.NoError(t, err)
			assert.Equal(t, 0, c)
		})
	}
}

func TestSizeBadClass(t *testing.T) {
	tbl := newTestTable(t, ConfigReference)
	for _, c := range []int{-1, tbl.Len(), tbl.Len() + 10} {
		size, err := tbl.Size(c)
		assert.ErrorIs(t, err, ErrBadClass, "class %d", c)
		assert.Zero(t, size)
	}
}

func TestReferenceLayout(t *testing.T) {
	tbl := newTestTable(t, ConfigReference)
	require.Equal(t, 116, tbl.Len())
	assert.Equal(t, uint64(245760), tbl.MaxSize())

	sizes := tbl.Sizes()
	// Range boundaries.
	assert.Equal(t, uint64(504), sizes[62])
	assert.Equal(t, uint64(512), sizes[63])
	assert.Equal(t, uint64(1024), sizes[71])
	assert.Equal(t, uint64(8192), sizes[85])
	assert.Equal(t, uint64(16384), sizes[93])
	assert.Equal(t, uint64(30720), sizes[100])
	assert.Equal(t, uint64(16384), sizes[101])
	assert.Equal(t, uint64(32768), sizes[102])

	// The overlapping last range breaks the ordering at exactly one place.
	// If this fails, someone changed the reference ranges.
	var breaks []int
	for i := 0; i+1 < len(sizes); i++ {
		if sizes[i] >= sizes[i+1] {
			breaks = append(breaks, i)
		}
	}
	assert.Equal(t, []int{100}, breaks)
	assert.False(t, tbl.Increasing())
	assert.Equal(t, []int{101}, tbl.Shadowed())
}

func TestNonOverlappingLayout(t *testing.T) {
	tbl := newTestTable(t, ConfigNonOverlapping)
	assert.Equal(t, 115, tbl.Len())
	assert.True(t, tbl.Increasing())
	assert.Empty(t, tbl.Shadowed())
	require.NoError(t, tbl.Validate())
}

func TestClassBoundaries(t *testing.T) {
	for _, cfg := range Configs {
		t.Run(cfg.Name, func(t *testing.T) {
			tbl := newTestTable(t, cfg)
			shadowed := map[int]bool{}
			for _, c := range tbl.Shadowed() {
				shadowed[c] = true
			}
			sizes := tbl.Sizes()
			for i, s := range sizes {
				if shadowed[i] {
					continue
				}
				// Exact match selects its own class.
				c, err := tbl.Class(s)
				require.NoError(t, err)
				assert.Equal(t, i, c, "Class(%d)", s)

				// One byte above the previous class rounds up into this one.
				if i > 0 && sizes[i-1] < s-1 {
					c, err = tbl.Class(s - 1)
					require.NoError(t, err)
					assert.Equal(t, i, c, "Class(%d)", s-1)
				}
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tbl := newTestTable(t, ConfigReference)
	for i := 0; i < tbl.Len(); i++ {
		size, err := tbl.Size(i)
		require.NoError(t, err)
		c, err := tbl.Class(size)
		require.NoError(t, err)
		if i == 101 {
			// 16384 is first reached at class 93.
			assert.Equal(t, 93, c)
			continue
		}
		assert.Equal(t, i, c, "class %d size %d", i, size)
	}
}

func TestClassAcrossOverlap(t *testing.T) {
	tbl := newTestTable(t, ConfigReference)
	tests := []struct {
		size uint64
		want int
	}{
		{130, 16},
		{1024, 71},
		{16384, 93},
		{16385, 94},
		{30720, 100},
		{30721, 102}, // skips the shadowed 16384 at 101
		{32 * 1024, 102},
		{128 * 1024, 108},
		{245760, 115},
	}
	for _, tt := range tests {
		c, err := tbl.Class(tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.want, c, "Class(%d)", tt.size)
	}

	_, err := tbl.Class(245761)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDefault(t *testing.T) {
	a, b := Default(), Default()
	assert.Same(t, a, b)
	assert.Equal(t, DefaultConfig.Name, a.Name())
	assert.Equal(t, NumClasses, a.Len())
}

func TestConfigByName(t *testing.T) {
	cfg, ok := ConfigByName("reference")
	require.True(t, ok)
	assert.Equal(t, ConfigReference, cfg)

	_, ok = ConfigByName("missing")
	assert.False(t, ok)
}

func TestConcurrentLookups(t *testing.T) {
	tbl := Default()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for size := uint64(g); size <= tbl.MaxSize(); size += 97 {
				c, err := tbl.Class(size)
				if !assert.NoError(t, err) {
					return
				}
				if !assert.Equal(t, SizeClass(size), c) {
					return
				}
				s, _ := tbl.Size(c)
				assert.GreaterOrEqual(t, s, size)
			}
		}(g)
	}
	wg.Wait()
}

func BenchmarkTableClass(b *testing.B) {
	tbl := Default()
	for _, size := range []uint64{8, 1000, 16000, 200000} {
		b.Run(strconv.FormatUint(size, 10), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = tbl.Class(size)
			}
		})
	}
}
