package virtual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	scrolls []ScrollEvent
	ranges  []RangeEvent
}

func newTestGrid(t *testing.T, mutate func(*GridConfig)) (*Grid, *recorder) {
	t.Helper()
	rec := &recorder{}
	cfg := GridConfig{
		TotalRow:        1000,
		TotalColumn:     100,
		RowHeight:       FixedSize(50),
		ColumnWidth:     FixedSize(100),
		Width:           400,
		Height:          200,
		RowCache:        2,
		ColumnCache:     2,
		OnScroll:        func(ev ScrollEvent) { rec.scrolls = append(rec.scrolls, ev) },
		OnItemsRendered: func(ev RangeEvent) { rec.ranges = append(rec.ranges, ev) },
	}
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := NewGrid(cfg)
	require.NoError(t, err)
	return g, rec
}

type fakeNative struct {
	writes [][2]float32
}

func (f *fakeNative) SetNativeScroll(left, top float32) {
	f.writes = append(f.writes, [2]float32{left, top})
}

func TestGridValidate(t *testing.T) {
	_, err := NewGrid(GridConfig{TotalRow: -1, TotalColumn: 3, ColumnWidth: FixedSize(10), Width: -5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTotal)
	assert.ErrorIs(t, err, ErrMissingSize)
	assert.ErrorIs(t, err, ErrInvalidViewport)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "TotalRow", cerr.Field)
}

func TestGridFirstFlushEmitsRange(t *testing.T) {
	g, rec := newTestGrid(t, nil)
	g.Flush()
	require.Len(t, rec.ranges, 1)
	assert.Equal(t, RangeEvent{
		RowCacheStart: 0, RowCacheEnd: 5, RowVisibleStart: 0, RowVisibleEnd: 3,
		ColumnCacheStart: 0, ColumnCacheEnd: 5, ColumnVisibleStart: 0, ColumnVisibleEnd: 3,
	}, rec.ranges[0])

	// Nothing changed: no second emission.
	g.Flush()
	assert.Len(t, rec.ranges, 1)
}

func TestGridScrollToIdempotent(t *testing.T) {
	g, rec := newTestGrid(t, nil)
	g.ScrollTo(ScrollOptions{Top: At(0), Left: At(0)})
	assert.Empty(t, rec.scrolls)
	assert.Equal(t, ScrollState{}, g.State())

	g.ScrollTo(ScrollOptions{Top: At(120)})
	require.Len(t, rec.scrolls, 1)
	g.ScrollTo(ScrollOptions{Top: At(120)})
	assert.Len(t, rec.scrolls, 1)
}

func TestGridScrollToState(t *testing.T) {
	g, rec := newTestGrid(t, nil)
	g.ScrollTo(ScrollOptions{Top: At(300), Left: At(-20)})

	// State is readable before the next tick.
	s := g.State()
	assert.Equal(t, float32(300), s.ScrollTop)
	assert.Equal(t, float32(0), s.ScrollLeft)
	assert.True(t, s.IsScrolling)
	assert.True(t, s.UpdateRequested)
	assert.Equal(t, Forward, s.YAxisScrollDir)
	assert.Equal(t, ScrollEvent{ScrollTop: 300, YAxisScrollDir: Forward, UpdateRequested: true}, rec.scrolls[0])

	g.ScrollTo(ScrollOptions{Top: At(100)})
	assert.Equal(t, Backward, g.State().YAxisScrollDir)
	assert.Equal(t, Forward, g.State().XAxisScrollDir, "untouched axis keeps its direction")
}

func TestGridIdleTransition(t *testing.T) {
	sched := NewFrameScheduler()
	g, _ := newTestGrid(t, func(c *GridConfig) { c.Scheduler = sched })

	g.ScrollTo(ScrollOptions{Top: At(100)})
	g.ScrollTo(ScrollOptions{Top: At(200)})
	assert.Equal(t, 1, sched.Pending(), "second scroll replaces the idle task")

	g.Flush()
	assert.True(t, g.State().IsScrolling)
	scrolling := g.Range(AxisRow)
	assert.Equal(t, 1, scrolling.Start-scrolling.OverscanStart, "behind travel gets one item")

	sched.Flush()
	assert.False(t, g.State().IsScrolling)
	g.Flush()
	settled := g.Range(AxisRow)
	assert.Equal(t, 2, settled.Start-settled.OverscanStart)
}

func TestGridIdleNeverOvertakesNewerScroll(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.ScrollTo(ScrollOptions{Top: At(100)})
	g.Flush() // runs the idle task queued by the first scroll
	assert.False(t, g.State().IsScrolling)

	g.ScrollTo(ScrollOptions{Top: At(150)})
	assert.True(t, g.State().IsScrolling)
	g.ScrollTo(ScrollOptions{Top: At(160)})
	assert.True(t, g.State().IsScrolling)
}

func TestGridScrollToItemClamps(t *testing.T) {
	a, _ := newTestGrid(t, nil)
	b, _ := newTestGrid(t, nil)

	a.ScrollToItem(5000, -3, AlignStart)
	b.ScrollToItem(999, 0, AlignStart)
	assert.Equal(t, b.State(), a.State())
	assert.Equal(t, float32(1000*50-200), a.State().ScrollTop)
}

func TestGridScrollToItemAlignments(t *testing.T) {
	for _, align := range []Alignment{AlignAuto, AlignSmart, AlignStart, AlignCenter, AlignEnd} {
		t.Run(align.String(), func(t *testing.T) {
			g, _ := newTestGrid(t, nil)
			g.ScrollToItem(400, 50, align)
			g.Flush()
			rows, cols := g.Range(AxisRow), g.Range(AxisColumn)
			assert.True(t, rows.Start <= 400 && 400 <= rows.Stop, "row range %+v", rows)
			assert.True(t, cols.Start <= 50 && 50 <= cols.Stop, "column range %+v", cols)
		})
	}
}

func TestGridNativeScrollEcho(t *testing.T) {
	native := &fakeNative{}
	g, rec := newTestGrid(t, func(c *GridConfig) { c.Native = native })

	g.ScrollTo(ScrollOptions{Top: At(250)})
	g.Flush()
	require.Equal(t, [][2]float32{{0, 250}}, native.writes)

	// The container echoes the write back; it must not produce a new event.
	g.HandleNativeScroll(NativeScrollEvent{ScrollTop: 250, ScrollHeight: 50000, ClientHeight: 200})
	assert.Len(t, rec.scrolls, 1)

	// A user scroll is not written back.
	g.HandleNativeScroll(NativeScrollEvent{ScrollTop: 300, ScrollHeight: 50000, ClientHeight: 200})
	require.Len(t, rec.scrolls, 2)
	assert.False(t, rec.scrolls[1].UpdateRequested)
	g.Flush()
	assert.Len(t, native.writes, 1)
}

func TestGridNativeScrollClampsToContent(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.HandleNativeScroll(NativeScrollEvent{ScrollTop: 90000, ScrollHeight: 50000, ClientHeight: 200})
	assert.Equal(t, float32(49800), g.State().ScrollTop)
}

func TestGridRTLNative(t *testing.T) {
	resetRTLDetection()
	t.Cleanup(resetRTLDetection)

	native := &fakeNative{}
	g, _ := newTestGrid(t, func(c *GridConfig) {
		c.Direction = RTL
		c.RTLProbe = func() RTLOffsetType { return RTLOffsetNegative }
		c.Native = native
	})

	g.HandleNativeScroll(NativeScrollEvent{ScrollLeft: -40, ScrollWidth: 10000, ClientWidth: 400})
	assert.Equal(t, float32(40), g.State().ScrollLeft)

	g.ScrollTo(ScrollOptions{Left: At(80)})
	g.Flush()
	require.NotEmpty(t, native.writes)
	assert.Equal(t, float32(-80), native.writes[len(native.writes)-1][0])

	s := g.ItemStyle(0, 0)
	assert.Equal(t, RTL, s.Direction)
	assert.Contains(t, s.CSS(), "right:0px")
}

func TestGridWheel(t *testing.T) {
	sched := NewFrameScheduler()
	g, rec := newTestGrid(t, func(c *GridConfig) { c.Scheduler = sched })

	assert.True(t, g.HandleWheel(WheelEvent{DeltaY: 30, DeltaX: 5}))
	assert.True(t, g.HandleWheel(WheelEvent{DeltaY: 30}))
	assert.Empty(t, rec.scrolls, "wheel deltas wait for the tick")

	sched.Flush()
	require.Len(t, rec.scrolls, 1, "deltas coalesce into one scroll")
	assert.Equal(t, float32(60), g.State().ScrollTop)
	assert.Equal(t, float32(0), g.State().ScrollLeft, "dominant axis wins")

	assert.True(t, g.HandleWheel(WheelEvent{DeltaY: 40, Shift: true}))
	sched.Flush()
	assert.Equal(t, float32(40), g.State().ScrollLeft)
	assert.Equal(t, float32(60), g.State().ScrollTop)
}

func TestGridWheelEdges(t *testing.T) {
	g, _ := newTestGrid(t, nil)

	// At the top, scrolling up propagates.
	assert.False(t, g.HandleWheel(WheelEvent{DeltaY: -10}))
	assert.False(t, g.HandleWheel(WheelEvent{DeltaX: -10}))

	g.ScrollTo(ScrollOptions{Top: At(g.MaxOffset(AxisRow))})
	assert.False(t, g.HandleWheel(WheelEvent{DeltaY: 10}))
	assert.True(t, g.HandleWheel(WheelEvent{DeltaY: -10}))

	top, bottom, left, right := g.Edges()
	assert.False(t, top)
	assert.True(t, bottom)
	assert.True(t, left)
	assert.False(t, right)
}

func TestGridWheelClampsToMax(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.ScrollTo(ScrollOptions{Top: At(g.MaxOffset(AxisRow) - 10)})
	assert.True(t, g.HandleWheel(WheelEvent{DeltaY: 500}))
	g.Flush()
	assert.Equal(t, g.MaxOffset(AxisRow), g.State().ScrollTop)
}

func TestGridWheelVerticalToHorizontal(t *testing.T) {
	sched := NewFrameScheduler()
	g, _ := newTestGrid(t, func(c *GridConfig) {
		c.TotalRow = 2 // 100px of rows in a 200px viewport
		c.Scheduler = sched
	})
	assert.True(t, g.HandleWheel(WheelEvent{DeltaY: 25}))
	sched.Flush()
	assert.Equal(t, float32(25), g.State().ScrollLeft)
	assert.Equal(t, float32(0), g.State().ScrollTop)
}

func TestGridResizeDebounced(t *testing.T) {
	sched := NewFrameScheduler()
	g, _ := newTestGrid(t, func(c *GridConfig) { c.Scheduler = sched })
	g.Resize(800, 300)
	g.Resize(600, 400)
	assert.Equal(t, 1, sched.Pending())
	w, h := g.Viewport()
	assert.Equal(t, [2]float32{400, 200}, [2]float32{w, h})

	sched.Flush()
	g.Flush()
	w, h = g.Viewport()
	assert.Equal(t, [2]float32{600, 400}, [2]float32{w, h})
	assert.Equal(t, 7, g.Range(AxisRow).Stop)
}

func TestGridResetAfterIndices(t *testing.T) {
	heights := map[int]float32{}
	g, rec := newTestGrid(t, func(c *GridConfig) {
		c.RowHeight = DynamicSize(func(i int) float32 {
			if h, ok := heights[i]; ok {
				return h
			}
			return 50
		}, 50)
	})
	g.Flush()
	before := g.ItemStyle(5, 0)
	assert.Equal(t, float32(250), before.Top)

	heights[1] = 150
	g.ResetAfterIndices(1, 0, true)
	g.Flush()
	assert.Len(t, rec.ranges, 2, "forced update recomputes the window")
	assert.Equal(t, float32(350), g.ItemStyle(5, 0).Top)
	assert.Equal(t, float32(0), g.ItemStyle(0, 0).Top)
}

func TestGridItemKey(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	assert.Equal(t, "3:4", g.ItemKey(3, 4))

	h, _ := newTestGrid(t, func(c *GridConfig) {
		c.Data = []string{"a", "b"}
		c.ItemKey = func(row, column int, data any) string {
			return data.([]string)[row%2]
		}
	})
	assert.Equal(t, "b", h.ItemKey(1, 0))
}

func TestGridScrollbarConversion(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	total := g.EstimatedTotalSize(AxisRow)

	g.ScrollbarScroll(AxisRow, 50, 100)
	assert.Equal(t, 50/float32(100)*(total-200), g.State().ScrollTop)
	assert.InDelta(t, 0.5, g.ScrollFrom(AxisRow), 1e-6)
	assert.InDelta(t, 200/total*100, g.Ratio(AxisRow), 1e-6)
}

func TestGridInitialScroll(t *testing.T) {
	native := &fakeNative{}
	g, _ := newTestGrid(t, func(c *GridConfig) {
		c.InitScrollTop = 500
		c.Native = native
	})
	g.Flush()
	assert.Equal(t, 10, g.Range(AxisRow).Start)
	assert.Equal(t, [][2]float32{{0, 500}}, native.writes)
}

func TestGridClose(t *testing.T) {
	sched := NewFrameScheduler()
	g, _ := newTestGrid(t, func(c *GridConfig) { c.Scheduler = sched })
	g.ScrollTo(ScrollOptions{Top: At(10)})
	g.Resize(1, 1)
	g.HandleWheel(WheelEvent{DeltaY: 10})
	g.Close()
	assert.Equal(t, 0, sched.Pending())
}

func TestGridReplacedSizeSourceRestyles(t *testing.T) {
	for _, tt := range []struct {
		name     string
		perfMode bool
	}{{"single slot", false}, {"perf mode", true}} {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGrid(t, func(c *GridConfig) { c.PerfMode = tt.perfMode })
			assert.Equal(t, ItemStyle{Offset: 100, Top: 50, Width: 100, Height: 50}, g.ItemStyle(1, 1))

			require.NoError(t, g.SetColumnWidth(FixedSize(80)))
			g.Flush()
			assert.Equal(t, ItemStyle{Offset: 80, Top: 50, Width: 80, Height: 50}, g.ItemStyle(1, 1))

			require.NoError(t, g.SetRowHeight(DynamicSize(func(int) float32 { return 30 }, 30)))
			assert.Equal(t, ItemStyle{Offset: 80, Top: 30, Width: 80, Height: 30}, g.ItemStyle(1, 1))

			// back to the mounted columns: a kept generation must not answer
			require.NoError(t, g.SetColumnWidth(FixedSize(100)))
			assert.Equal(t, ItemStyle{Offset: 100, Top: 30, Width: 100, Height: 30}, g.ItemStyle(1, 1))
			assert.Equal(t, FixedSize(100), g.SizeSource(AxisColumn))
		})
	}
}

func TestGridReplacedSizeSourceValidates(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	assert.ErrorIs(t, g.SetRowHeight(FixedSize(-1)), ErrInvalidSize)
	assert.Equal(t, FixedSize(50), g.SizeSource(AxisRow), "rejected source is not mounted")
}
