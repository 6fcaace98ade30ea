package virtual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedMetrics(t *testing.T) {
	f := NewFixed(1000, 50)
	for _, i := range []int{0, 1, 7, 999} {
		m := f.Metrics(i)
		assert.Equal(t, float32(i)*50, m.Offset, "offset(%d)", i)
		assert.Equal(t, float32(50), m.Size, "size(%d)", i)
	}
	assert.Equal(t, float32(50000), f.EstimatedTotalSize())
}

func TestFixedStartStop(t *testing.T) {
	tests := []struct {
		name             string
		offset, viewport float32
		start, stop      int
	}{
		{"top", 0, 200, 0, 3},
		{"partial first row", 120, 200, 2, 6},
		{"exact boundary", 100, 200, 2, 5},
		{"past the end", 100000, 200, 19, 19},
		{"zero viewport", 100, 0, 2, 2},
	}
	f := NewFixed(20, 50)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := f.StartIndexForOffset(tt.offset)
			stop := f.StopIndexForStartIndex(start, tt.offset, tt.viewport)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.stop, stop)
		})
	}
}

func TestDynamicMonotonic(t *testing.T) {
	d := NewDynamic(500, func(i int) float32 { return float32(10 + i%7) }, 12, nil)
	for i := 0; i < 499; i++ {
		cur, next := d.Metrics(i), d.Metrics(i+1)
		require.Equal(t, cur.Offset+cur.Size, next.Offset, "offset(%d)", i+1)
	}
	assert.Equal(t, 499, d.LastMeasuredIndex())
}

func TestDynamicLazyWatermark(t *testing.T) {
	calls := 0
	d := NewDynamic(100, func(int) float32 { calls++; return 20 }, 0, nil)
	assert.Equal(t, -1, d.LastMeasuredIndex())

	m := d.Metrics(9)
	assert.Equal(t, float32(180), m.Offset)
	assert.Equal(t, 9, d.LastMeasuredIndex())
	assert.Equal(t, 10, calls)

	// Cached lookups never call the resolver again.
	d.Metrics(3)
	d.Metrics(9)
	assert.Equal(t, 10, calls)

	// Lower indices never shrink the watermark.
	d.Metrics(2)
	assert.Equal(t, 9, d.LastMeasuredIndex())
}

func TestDynamicEstimatedTotal(t *testing.T) {
	d := NewDynamic(10, func(int) float32 { return 30 }, 40, nil)
	assert.Equal(t, float32(400), d.EstimatedTotalSize())
	d.Metrics(3)
	assert.Equal(t, float32(4*30+6*40), d.EstimatedTotalSize())
}

func TestDynamicResetAfterIndex(t *testing.T) {
	sizes := map[int]float32{}
	d := NewDynamic(50, func(i int) float32 {
		if s, ok := sizes[i]; ok {
			return s
		}
		return 10
	}, 10, nil)
	d.Metrics(20)
	rev := d.Revision()

	sizes[5] = 100
	d.ResetAfterIndex(5)
	assert.Equal(t, 4, d.LastMeasuredIndex())
	assert.NotEqual(t, rev, d.Revision())
	assert.Equal(t, float32(150), d.Metrics(6).Offset)
	assert.Equal(t, float32(40), d.Metrics(4).Offset)
}

func TestDynamicOverride(t *testing.T) {
	calls := map[int]int{}
	d := NewDynamic(20, func(i int) float32 { calls[i]++; return 10 }, 10, nil)
	d.Metrics(10)

	d.Override(4, 50)
	assert.Equal(t, 3, d.LastMeasuredIndex(), "cache below the override survives")
	assert.Equal(t, float32(50), d.Metrics(4).Size)
	assert.Equal(t, float32(90), d.Metrics(5).Offset)
	assert.Equal(t, 1, calls[2], "index 2 was never re-resolved")

	d.ClearOverride(4)
	assert.Equal(t, float32(10), d.Metrics(4).Size)
}

func TestDynamicStartIndexSearch(t *testing.T) {
	d := NewDynamic(1000, func(i int) float32 { return float32(1 + i%3) }, 2, nil)

	naive := func(offset float32) int {
		for i := 0; i < 1000; i++ {
			if d.Metrics(i).End() > offset {
				return i
			}
		}
		return 999
	}

	// Exponential search past the watermark.
	start := d.StartIndexForOffset(1500)
	assert.Equal(t, naive(1500), start)

	// Binary search inside the measured prefix.
	for _, off := range []float32{0, 0.5, 1, 3, 250, 1000, 1999, 5000} {
		assert.Equal(t, naive(off), d.StartIndexForOffset(off), "offset %v", off)
	}
}

func TestDynamicStopIndex(t *testing.T) {
	d := NewDynamic(10, func(i int) float32 { return float32(10 * (i + 1)) }, 10, nil)
	// offsets: 0, 10, 30, 60, 100, 150 ...
	start := d.StartIndexForOffset(35)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, d.StopIndexForStartIndex(start, 35, 70))
	assert.Equal(t, 9, d.StopIndexForStartIndex(start, 35, 10000))
}

func TestDynamicInvalidSizeClamped(t *testing.T) {
	d := NewDynamic(3, func(i int) float32 { return -5 }, 10, nil)
	assert.Equal(t, float32(0), d.Metrics(2).Size)
	assert.Equal(t, float32(0), d.Metrics(2).Offset)
}

func TestSizeSourceValidate(t *testing.T) {
	tests := []struct {
		name string
		src  SizeSource
		err  error
	}{
		{"missing", SizeSource{}, ErrMissingSize},
		{"negative fixed", FixedSize(-1), ErrInvalidSize},
		{"invalid first size", DynamicSize(func(int) float32 { return -1 }, 10), ErrInvalidSize},
		{"negative estimate", DynamicSize(func(int) float32 { return 1 }, -10), ErrInvalidSize},
		{"fixed", FixedSize(20), nil},
		{"dynamic", DynamicSize(func(int) float32 { return 1 }, 0), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.src.validate("RowHeight", 10)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Contains(t, cerr.Field, "RowHeight")
		})
	}
}

func TestSizeSourceSame(t *testing.T) {
	constant := func(px float32) SizeFunc { return func(int) float32 { return px } }
	other := func(int) float32 { return 1 }
	rebuilt := DynamicSize(constant(1), 10)

	tests := []struct {
		name string
		a, b SizeSource
		same bool
	}{
		{"equal fixed", FixedSize(20), FixedSize(20), true},
		{"fixed size changed", FixedSize(20), FixedSize(30), false},
		{"fixed to dynamic", FixedSize(20), DynamicSize(other, 0), false},
		{"closure rebuilt at one site", DynamicSize(constant(1), 10), rebuilt, true},
		{"different resolver", DynamicSize(other, 10), rebuilt, false},
		{"estimate changed", DynamicSize(other, 10), DynamicSize(other, 20), false},
		{"revision bumped", rebuilt, SizeSource{Func: rebuilt.Func, Estimated: 10, Revision: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, tt.a.Same(tt.b))
			assert.Equal(t, tt.same, tt.b.Same(tt.a))
		})
	}
}
