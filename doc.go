// Package vgui is an immediate-mode widget runtime that hosts the
// virtualization engine in package virtual.
//
// A frame looks like this:
//
//	ctx := ui.Begin(input, displaySize, dt)
//	grid, err := ctx.VirtualGrid("cells", virtual.GridConfig{
//	    TotalRow:    100000,
//	    TotalColumn: 50,
//	    RowHeight:   virtual.FixedSize(24),
//	    ColumnWidth: virtual.FixedSize(120),
//	    Width:       800,
//	    Height:      600,
//	}, func(c vgui.Cell) {
//	    ctx.AddText(c.Rect.X+4, c.Rect.Y+4, fmt.Sprint(c.Row, c.Column), ctx.Style().TextColor)
//	})
//	if err != nil {
//	    return err
//	}
//	grid.ScrollToItem(500, 0, virtual.AlignCenter)
//	_ = ui.End()
//
// Engines are mounted per widget ID and survive across frames. A widget that
// is not drawn for a frame is unmounted: its engine and scrollbars are closed
// and their pending deferred work is dropped.
//
// Deferred engine work (idle transitions, resize recompute, wheel
// coalescing) runs on the Context's FrameScheduler, which End flushes after
// rendering, so it takes effect on the next frame.
package vgui
