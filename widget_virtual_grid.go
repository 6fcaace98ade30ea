package vgui

import (
	"fmt"

	"github.com/go-theft-auto/vgui/virtual"
)

// Cell is one rendered item of a VirtualGrid.
type Cell struct {
	Row, Column int
	Key         string
	Rect        Rect              // on screen
	Style       virtual.ItemStyle // inside the scroll content
	IsScrolling bool
	Hovered     bool
}

// VirtualGrid draws a windowed two-axis grid at the cursor. The engine is
// mounted on the first call for label and kept while the widget is drawn
// every frame; later calls sync counts, size sources, viewport size and
// direction from cfg. Size sources are compared with SizeSource.Same. draw runs for every cell in the overscan window, clipped to the
// viewport; a nil draw prints each cell's key.
//
// A zero cfg.Width or cfg.Height is taken from OptWidth/OptHeight and then
// from the space left in the display. A nil cfg.Scheduler selects the
// context's scheduler.
func (ctx *Context) VirtualGrid(label string, cfg virtual.GridConfig, draw func(Cell), opts ...Option) (*virtual.Grid, error) {
	o := applyOptions(opts)
	cfg.Width, cfg.Height = ctx.resolveSize(cfg.Width, cfg.Height, o)
	id := ctx.StableID(label)
	st, err := ctx.mountGrid(id, label, cfg, o)
	if err != nil {
		return nil, err
	}
	g := st.grid
	if g.Rows().Count() != cfg.TotalRow || g.Columns().Count() != cfg.TotalColumn {
		g.SetTotals(cfg.TotalRow, cfg.TotalColumn)
	}
	if err := syncSizes(g, cfg.RowHeight, cfg.ColumnWidth); err != nil {
		return nil, fmt.Errorf("vgui: grid %q: %w", label, err)
	}
	ctx.syncViewport(g, cfg.Width, cfg.Height, cfg.Direction)
	st.bars[virtual.AxisColumn].mirrored = g.Direction() == virtual.RTL

	w, h := g.Viewport()
	view := Rect{X: ctx.cursor.X, Y: ctx.cursor.Y, W: w, H: h}
	ctx.scrollInput(view, g, virtual.AxisRow, o)
	g.Flush()
	sel := GetOpt(o, OptSelected)
	selected := func(row, _ int) bool { return row == sel }
	ctx.drawCells(view, g, o, selected, func(c Cell) {
		if draw != nil {
			draw(c)
			return
		}
		ctx.defaultCell(c)
	})
	ctx.drawBars(view, g, st.bars, opts)
	ctx.AdvanceCursor(Vec2{X: w, Y: h})
	return g, nil
}

func (ctx *Context) mountGrid(id ID, label string, cfg virtual.GridConfig, o options) (*gridState, error) {
	if gridStore.GetIfExists(id) != nil {
		return gridStore.Get(id, gridState{}), nil
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = ctx.sched
	}
	g, err := virtual.NewGrid(cfg)
	if err != nil {
		return nil, fmt.Errorf("vgui: mount grid %q: %w", label, err)
	}
	sbCfg := GetOpt(o, OptScrollbar)
	st := gridState{grid: g}
	for _, axis := range []virtual.Axis{virtual.AxisRow, virtual.AxisColumn} {
		axis := axis
		st.bars[axis] = ctx.newBar(id, axis, sbCfg, func(distance, steps float32) {
			g.ScrollbarScroll(axis, distance, steps)
		})
	}
	if t := GetOpt(o, OptScrollToItem); t.Index >= 0 {
		g.ScrollToItem(t.Index, t.Column, t.Align)
	}
	guiLogger.Debug("mount virtual grid", "label", label, "id", id, "rows", cfg.TotalRow, "columns", cfg.TotalColumn)
	gridStore.Set(id, st)
	return gridStore.Get(id, gridState{}), nil
}

// syncSizes swaps in the size sources that are no longer the mounted ones.
func syncSizes(g *virtual.Grid, rows, columns virtual.SizeSource) error {
	if !rows.Same(g.SizeSource(virtual.AxisRow)) {
		if err := g.SetRowHeight(rows); err != nil {
			return err
		}
	}
	if !columns.Same(g.SizeSource(virtual.AxisColumn)) {
		return g.SetColumnWidth(columns)
	}
	return nil
}

// resolveSize fills in a zero viewport dimension.
func (ctx *Context) resolveSize(w, h float32, o options) (float32, float32) {
	if w == 0 {
		w = GetOpt(o, OptWidth)
	}
	if w == 0 {
		w = max(0, ctx.DisplaySize.X-ctx.cursor.X)
	}
	if h == 0 {
		h = GetOpt(o, OptHeight)
	}
	if h == 0 {
		h = max(0, ctx.DisplaySize.Y-ctx.cursor.Y)
	}
	return w, h
}

// syncViewport schedules a resize when the requested size changed. The
// engine applies it when the context's scheduler is flushed.
func (ctx *Context) syncViewport(g *virtual.Grid, w, h float32, dir virtual.Direction) {
	if cw, ch := g.Viewport(); cw != w || ch != h {
		g.Resize(w, h)
	}
	g.SetDirection(dir)
}

// scrollInput feeds wheel and navigation keys to g while the pointer is
// over view. primary is the axis paged by PageUp/PageDown/Home/End.
func (ctx *Context) scrollInput(view Rect, g *virtual.Grid, primary virtual.Axis, o options) {
	in := ctx.Input
	if in == nil || !ctx.isHovered(view) {
		return
	}
	step := GetOpt(o, OptWheelStep)
	if step <= 0 {
		step = ctx.style.WheelStep
	}
	if in.MouseWheelX != 0 || in.MouseWheelY != 0 {
		ev := virtual.WheelEvent{DeltaX: -in.MouseWheelX * step, DeltaY: -in.MouseWheelY * step, Shift: in.ModShift}
		if g.HandleWheel(ev) {
			ctx.WantCaptureMouse = true
		} else if guiVerbose() {
			guiLogger.Debug("wheel at edge, not consumed", "dx", ev.DeltaX, "dy", ev.DeltaY)
		}
	}
	if GetOpt(o, OptKeyboardNav) {
		keyboardScroll(in, g, primary, step)
	}
}

func keyboardScroll(in *InputState, g *virtual.Grid, primary virtual.Axis, step float32) {
	s := g.State()
	left, top := s.ScrollLeft, s.ScrollTop
	w, h := g.Viewport()
	offset, page := &top, h
	if primary == virtual.AxisColumn {
		offset, page = &left, w
	}
	back, fwd := KeyLeft, KeyRight
	if g.Direction() == virtual.RTL {
		back, fwd = KeyRight, KeyLeft
	}
	switch {
	case in.KeyPressed(KeyUp):
		top -= step
	case in.KeyPressed(KeyDown):
		top += step
	case in.KeyPressed(back):
		left -= step
	case in.KeyPressed(fwd):
		left += step
	case in.KeyPressed(KeyPageUp):
		*offset -= page
	case in.KeyPressed(KeyPageDown):
		*offset += page
	case in.KeyPressed(KeyHome):
		*offset = 0
	case in.KeyPressed(KeyEnd):
		*offset = g.MaxOffset(primary)
	default:
		return
	}
	left = clampf(left, 0, g.MaxOffset(virtual.AxisColumn))
	top = clampf(top, 0, g.MaxOffset(virtual.AxisRow))
	g.ScrollTo(virtual.ScrollOptions{Left: &left, Top: &top})
}

// cellRect maps an item style into the viewport at the current offsets.
func cellRect(view Rect, is virtual.ItemStyle, s virtual.ScrollState) Rect {
	x := view.X + is.Offset - s.ScrollLeft
	if is.Direction == virtual.RTL {
		x = view.X + view.W - (is.Offset - s.ScrollLeft) - is.Width
	}
	return Rect{X: x, Y: view.Y + is.Top - s.ScrollTop, W: is.Width, H: is.Height}
}

// drawCells fills the viewport background and visits every item in the
// overscan window of both axes, clipped to view.
func (ctx *Context) drawCells(view Rect, g *virtual.Grid, o options, selected func(row, column int) bool, visit func(Cell)) {
	style := ctx.style
	dl := ctx.DrawList
	dl.AddRect(view.X, view.Y, view.W, view.H, style.ViewportBgColor)
	if g.Rows().Count() == 0 || g.Columns().Count() == 0 {
		return
	}
	dl.PushClipRect(view.X, view.Y, view.X+view.W, view.Y+view.H)
	defer dl.PopClipRect()

	s := g.State()
	rows, cols := g.Range(virtual.AxisRow), g.Range(virtual.AxisColumn)
	striped := GetOpt(o, OptStriped) && style.RowBgAltColor != 0
	inside := ctx.isHovered(view)
	for r := rows.OverscanStart; r <= rows.OverscanStop; r++ {
		for c := cols.OverscanStart; c <= cols.OverscanStop; c++ {
			is := g.ItemStyle(r, c)
			rect := cellRect(view, is, s)
			cell := Cell{
				Row:         r,
				Column:      c,
				Key:         g.ItemKey(r, c),
				Rect:        rect,
				Style:       is,
				IsScrolling: s.IsScrolling && g.UseIsScrolling(),
				Hovered:     inside && ctx.isHovered(rect),
			}
			var bg uint32
			switch {
			case selected(r, c):
				bg = style.SelectedBgColor
			case cell.Hovered:
				bg = style.HoveredBgColor
			case striped && r%2 == 1:
				bg = style.RowBgAltColor
			}
			dl.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
			visit(cell)
		}
	}
}

// defaultCell prints the cell key, or a placeholder block while scrolling.
func (ctx *Context) defaultCell(c Cell) {
	if c.IsScrolling {
		p := ctx.style.CellPadding
		ctx.DrawList.AddRect(c.Rect.X+p, c.Rect.Y+p, c.Rect.W-2*p, c.Rect.H-2*p, ctx.style.PlaceholderColor)
		return
	}
	p := ctx.style.CellPadding
	ctx.AddText(c.Rect.X+p, c.Rect.Y+p, c.Key, ctx.style.TextColor)
}

// drawBars overlays the vertical bar on the end edge and the horizontal bar
// on the bottom edge of view.
func (ctx *Context) drawBars(view Rect, g *virtual.Grid, bars [2]*barState, opts []Option) {
	size := ctx.style.ScrollbarSize
	vbar, hbar := bars[virtual.AxisRow], bars[virtual.AxisColumn]
	hView := hbar != nil && g.Ratio(virtual.AxisColumn) < 100

	if vbar != nil {
		track := Rect{X: view.X + view.W - size, Y: view.Y, W: size, H: view.H}
		if g.Direction() == virtual.RTL {
			track.X = view.X
		}
		if hView {
			track.H -= size
		}
		ctx.drawBar(vbar, track, g.Ratio(virtual.AxisRow), g.ScrollFrom(virtual.AxisRow), opts)
	}
	if hbar != nil {
		track := Rect{X: view.X, Y: view.Y + view.H - size, W: view.W, H: size}
		ctx.drawBar(hbar, track, g.Ratio(virtual.AxisColumn), g.ScrollFrom(virtual.AxisColumn), opts)
	}
}
