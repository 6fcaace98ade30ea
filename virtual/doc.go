// Package virtual is the windowing engine behind the vgui VirtualList and
// VirtualGrid widgets.
//
// A Grid is two independent one-dimensional windowing problems composed:
// rows along the vertical axis and columns along the horizontal one. Each axis
// answers "where is item i and how big is it" through a SizeModel (Fixed or
// Dynamic), and CalcVisibleRange turns a scroll offset and viewport into the
// contiguous index range that must be drawn, plus overscan.
//
// The engine is host agnostic. It never draws and never reads input devices.
// Hosts feed it native scroll positions, wheel deltas and scrollbar gestures,
// call Flush once per frame, and draw the items reported by Range at the
// positions returned by ItemStyle:
//
//	grid, err := virtual.NewGrid(virtual.GridConfig{
//	    TotalRow:    10000,
//	    TotalColumn: 40,
//	    RowHeight:   virtual.FixedSize(24),
//	    ColumnWidth: virtual.DynamicSize(widthOf, 120),
//	    Width:       800,
//	    Height:      600,
//	})
//	if err != nil {
//	    return err
//	}
//	grid.HandleWheel(virtual.WheelEvent{DeltaY: 90})
//	grid.Flush()
//	rows, cols := grid.Range(virtual.AxisRow), grid.Range(virtual.AxisColumn)
//	for r := rows.OverscanStart; r <= rows.OverscanStop; r++ {
//	    for c := cols.OverscanStart; c <= cols.OverscanStop; c++ {
//	        draw(r, c, grid.ItemStyle(r, c))
//	    }
//	}
//
// All types in this package are meant to be driven from a single UI goroutine.
// Deferred work (idle transition, resize recompute, wheel coalescing) goes
// through a Scheduler so that hosts decide what a "tick" is.
package virtual
