package vgui

import "github.com/go-theft-auto/vgui/virtual"

// OptMirrored draws a horizontal scrollbar right to left, as in RTL layouts.
// The scrollbar's pointer target must reflect positions the same way.
var OptMirrored = NewOptKey("mirrored", false)

// Scrollbar draws sb on track and feeds it clicks. Lay sb out with SetLayout
// and sync it with SyncFrom first; drags started here continue through the
// scrollbar's pointer target until the button is released. It reports
// whether the thumb is being dragged.
func (ctx *Context) Scrollbar(id ID, sb *virtual.Scrollbar, track Rect, opts ...Option) bool {
	o := applyOptions(opts)
	switch GetOpt(o, OptScrollbarVisibility) {
	case ScrollbarNever:
		return false
	case ScrollbarAuto:
		if !sb.Visible() {
			return false
		}
	}
	style := ctx.style
	ctx.DrawList.AddRect(track.X, track.Y, track.W, track.H, style.ScrollbarBgColor)
	if !sb.Visible() {
		return false
	}

	axis := sb.Axis
	mirrored := axis == virtual.AxisColumn && GetOpt(o, OptMirrored)
	pivot := 2*track.X + track.W
	along := func(p Vec2) float32 {
		v := p.Along(axis)
		if mirrored {
			v = pivot - v
		}
		return v
	}

	if ctx.isClicked(id, track) {
		pos := along(ctx.Input.MousePos())
		if sb.HitThumb(pos) {
			if sb.BeginDrag(pos) {
				ctx.SetActive(id)
			}
			// press and release within one frame
			if !ctx.Input.MouseDown(MouseButtonLeft) {
				sb.PointerUp()
			}
		} else {
			sb.TrackClick(pos)
		}
		ctx.WantCaptureMouse = true
	}

	start, length := sb.Thumb()
	if mirrored {
		start = pivot - start - length
	}
	thumb := Rect{X: track.X, Y: start, W: track.W, H: length}
	if axis == virtual.AxisColumn {
		thumb = Rect{X: start, Y: track.Y, W: length, H: track.H}
	}
	dragging := sb.State().IsDragging
	color := style.ScrollbarGrabColor
	switch {
	case dragging:
		color = style.ScrollbarGrabActive
	case ctx.isHovered(thumb):
		color = style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(thumb.X, thumb.Y, thumb.W, thumb.H, color)
	return dragging
}

// drawBar lays out a mounted bar on track and draws it.
func (ctx *Context) drawBar(b *barState, track Rect, ratio, scrollFrom float32, opts []Option) {
	if b == nil {
		return
	}
	axis := b.sb.Axis
	b.track = track
	b.sb.SetLayout(track.Start(axis), track.Length(axis), ratio)
	b.sb.SyncFrom(scrollFrom)
	if b.mirrored {
		opts = append(opts[:len(opts):len(opts)], WithOpt(OptMirrored, true))
	}
	ctx.Scrollbar(b.id, b.sb, track, opts...)
}
