package vgui

import "github.com/go-theft-auto/vgui/virtual"

// PointerSource hands out window-level pointer targets for scrollbar drags.
// The Context is one: it replays InputState moves and releases at the start
// of each frame. A backend can install its own through WithPointerSource to
// deliver events as they arrive.
type PointerSource interface {
	PointerTarget(axis virtual.Axis) virtual.PointerTarget
}

type pointerListener struct {
	id     uint64
	axis   virtual.Axis
	onMove func(pos float32)
	onUp   func()
}

// PointerHub fans pointer moves and releases out to attached listeners.
// Each listener receives the coordinate of its own axis.
type PointerHub struct {
	next      uint64
	listeners []*pointerListener
}

// PointerTarget returns the target of axis.
func (h *PointerHub) PointerTarget(axis virtual.Axis) virtual.PointerTarget {
	return hubTarget{hub: h, axis: axis}
}

// Listeners returns the number of attached listeners.
func (h *PointerHub) Listeners() int { return len(h.listeners) }

func (h *PointerHub) listen(axis virtual.Axis, onMove func(float32), onUp func()) func() {
	h.next++
	l := &pointerListener{id: h.next, axis: axis, onMove: onMove, onUp: onUp}
	h.listeners = append(h.listeners, l)
	detached := false
	return func() {
		if detached {
			return
		}
		detached = true
		for i, x := range h.listeners {
			if x.id == l.id {
				h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// Move delivers a pointer position to every listener.
func (h *PointerHub) Move(pos Vec2) {
	for _, l := range h.snapshot() {
		if l.onMove != nil {
			l.onMove(pos.Along(l.axis))
		}
	}
}

// Release delivers a button release to every listener. Listeners usually
// detach themselves from inside onUp.
func (h *PointerHub) Release() {
	for _, l := range h.snapshot() {
		if l.onUp != nil {
			l.onUp()
		}
	}
}

// Dispatch replays the pointer events of in.
func (h *PointerHub) Dispatch(in *InputState) {
	if in == nil || len(h.listeners) == 0 {
		return
	}
	if in.MouseMoved() {
		h.Move(in.MousePos())
	}
	if in.MouseReleased(MouseButtonLeft) {
		h.Release()
	}
}

func (h *PointerHub) snapshot() []*pointerListener {
	return append([]*pointerListener(nil), h.listeners...)
}

type hubTarget struct {
	hub  *PointerHub
	axis virtual.Axis
}

func (t hubTarget) Listen(onMove func(pos float32), onUp func()) func() {
	return t.hub.listen(t.axis, onMove, onUp)
}
