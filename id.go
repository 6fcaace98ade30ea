package vgui

import "hash/fnv"

// ID identifies a widget across frames.
type ID uint64

// GetID derives an ID from label, the enclosing ID and a per-frame call
// counter, so the same label repeated in a loop still yields distinct IDs.
// For widgets that own mounted engines prefer StableID, which does not
// depend on call order.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++
	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | hashLabel(label)&0xFFFF)
}

// StableID derives an ID from label and the enclosing ID only. Widgets drawn
// conditionally keep their ID, which keeps their mounted state.
func (ctx *Context) StableID(label string) ID {
	h := fnv.New64a()
	var parent [8]byte
	p := uint64(ctx.CurrentID())
	for i := range parent {
		parent[i] = byte(p >> (8 * i))
	}
	h.Write(parent[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

func hashLabel(label string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return h.Sum64()
}

// PushID scopes subsequent IDs under label.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.StableID(label))
}

func (ctx *Context) PopID() {
	if n := len(ctx.idStack); n > 0 {
		ctx.idStack = ctx.idStack[:n-1]
	}
}

// CurrentID returns the innermost pushed ID, or 0.
func (ctx *Context) CurrentID() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return 0
}
