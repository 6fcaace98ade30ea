package vgui

import (
	"fmt"

	"github.com/go-theft-auto/vgui/virtual"
)

// Item is one rendered entry of a VirtualList.
type Item struct {
	Index       int
	Key         string
	Rect        Rect
	IsScrolling bool
	Hovered     bool
	Selected    bool
}

// VirtualList draws a windowed list at the cursor. It mounts like
// VirtualGrid; cfg.Total, cfg.ItemSize, the viewport size and the direction
// are synced every frame. OptSelected highlights one index.
func (ctx *Context) VirtualList(label string, cfg virtual.ListConfig, draw func(Item), opts ...Option) (*virtual.List, error) {
	o := applyOptions(opts)
	cfg.Width, cfg.Height = ctx.resolveSize(cfg.Width, cfg.Height, o)
	id := ctx.StableID(label)
	st, err := ctx.mountList(id, label, cfg, o)
	if err != nil {
		return nil, err
	}
	l := st.list
	if l.Total() != cfg.Total {
		l.SetTotal(cfg.Total)
	}
	if !cfg.ItemSize.Same(l.ItemSize()) {
		if err := l.SetItemSize(cfg.ItemSize); err != nil {
			return nil, fmt.Errorf("vgui: list %q: %w", label, err)
		}
	}
	g := l.Grid()
	ctx.syncViewport(g, cfg.Width, cfg.Height, cfg.Direction)
	st.bar.mirrored = l.Axis() == virtual.AxisColumn && g.Direction() == virtual.RTL

	w, h := g.Viewport()
	view := Rect{X: ctx.cursor.X, Y: ctx.cursor.Y, W: w, H: h}
	ctx.scrollInput(view, g, l.Axis(), o)
	l.Flush()

	sel := GetOpt(o, OptSelected)
	index := func(row, column int) int {
		if l.Layout() == virtual.Horizontal {
			return column
		}
		return row
	}
	selected := func(row, column int) bool { return index(row, column) == sel }
	ctx.drawCells(view, g, o, selected, func(c Cell) {
		it := Item{
			Index:       index(c.Row, c.Column),
			Rect:        c.Rect,
			IsScrolling: c.IsScrolling,
			Hovered:     c.Hovered,
		}
		it.Key = l.ItemKey(it.Index)
		it.Selected = it.Index == sel
		if draw != nil {
			draw(it)
			return
		}
		c.Key = it.Key
		ctx.defaultCell(c)
	})

	var bars [2]*barState
	bars[l.Axis()] = st.bar
	ctx.drawBars(view, g, bars, opts)
	ctx.AdvanceCursor(Vec2{X: w, Y: h})
	return l, nil
}

func (ctx *Context) mountList(id ID, label string, cfg virtual.ListConfig, o options) (*listState, error) {
	if listStore.GetIfExists(id) != nil {
		return listStore.Get(id, listState{}), nil
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = ctx.sched
	}
	l, err := virtual.NewList(cfg)
	if err != nil {
		return nil, fmt.Errorf("vgui: mount list %q: %w", label, err)
	}
	st := listState{list: l}
	st.bar = ctx.newBar(id, l.Axis(), GetOpt(o, OptScrollbar), l.ScrollbarScroll)
	if t := GetOpt(o, OptScrollToItem); t.Index >= 0 {
		l.ScrollToItem(t.Index, t.Align)
	}
	guiLogger.Debug("mount virtual list", "label", label, "id", id, "total", cfg.Total, "layout", cfg.Layout)
	listStore.Set(id, st)
	return listStore.Get(id, listState{}), nil
}
