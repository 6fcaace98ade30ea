package vgui

import "github.com/go-theft-auto/vgui/virtual"

// gridState is a mounted VirtualGrid.
type gridState struct {
	grid *virtual.Grid
	bars [2]*barState // indexed by virtual.Axis
}

// listState is a mounted VirtualList.
type listState struct {
	list *virtual.List
	bar  *barState
}

// barState is one mounted scrollbar and the track it was last laid out on.
type barState struct {
	id    ID
	sb    *virtual.Scrollbar
	track Rect
	// mirrored is set for a horizontal bar in an RTL layout: the thumb
	// starts at the right end of the track.
	mirrored bool
}

// pivot maps a screen X onto the mirrored track and back.
func (b *barState) pivot() float32 { return 2*b.track.X + b.track.W }

func (b *barState) close() {
	if b != nil {
		b.sb.Close()
	}
}

func (s *gridState) close() {
	s.grid.Close()
	for _, b := range s.bars {
		b.close()
	}
}

func (s *listState) close() {
	s.list.Close()
	s.bar.close()
}

// Widgets that are not drawn for a frame are unmounted here. Closing cancels
// the engine's deferred work and detaches scrollbar drag listeners.
var (
	gridStore = NewFrameStoreWithEvict(func(id ID, s *gridState) {
		guiLogger.Debug("unmount virtual grid", "id", id)
		s.close()
	})
	listStore = NewFrameStoreWithEvict(func(id ID, s *listState) {
		guiLogger.Debug("unmount virtual list", "id", id)
		s.close()
	})
)

// mirrorTarget reflects pointer positions around the track center while
// the bar is mirrored, so the scrollbar sees them in its own coordinates.
type mirrorTarget struct {
	inner virtual.PointerTarget
	bar   *barState
}

func (t mirrorTarget) Listen(onMove func(float32), onUp func()) func() {
	return t.inner.Listen(func(pos float32) {
		if t.bar.mirrored {
			pos = t.bar.pivot() - pos
		}
		onMove(pos)
	}, onUp)
}

// newBar mounts a scrollbar for axis that reports travel to onScroll.
func (ctx *Context) newBar(owner ID, axis virtual.Axis, cfg virtual.ScrollbarConfig, onScroll func(distance, steps float32)) *barState {
	b := &barState{id: owner<<1 | ID(axis)}
	target := ctx.pointer.PointerTarget(axis)
	if axis == virtual.AxisColumn {
		target = mirrorTarget{inner: target, bar: b}
	}
	b.sb = virtual.NewScrollbar(axis, cfg, target, onScroll)
	return b
}

// GridHandle returns the engine mounted under label in the current ID scope,
// or nil when no VirtualGrid with that label was drawn recently.
func (ctx *Context) GridHandle(label string) *virtual.Grid {
	if s := gridStore.GetIfExists(ctx.StableID(label)); s != nil {
		return s.grid
	}
	return nil
}

// ListHandle is GridHandle for VirtualList.
func (ctx *Context) ListHandle(label string) *virtual.List {
	if s := listStore.GetIfExists(ctx.StableID(label)); s != nil {
		return s.list
	}
	return nil
}
