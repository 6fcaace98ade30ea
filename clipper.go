package vgui

import "github.com/go-theft-auto/vgui/virtual"

// ListClipper windows a list of equal-height rows for widgets that keep
// their own scroll offset and do not need a mounted engine.
//
//	clip := vgui.NewListClipper(len(rows), 20, viewH, scrollY)
//	for i := clip.StartIdx; i < clip.EndIdx; i++ {
//	    y := clip.ItemY(i, top, scrollY)
//	    ...
//	}
type ListClipper struct {
	StartIdx   int // first rendered row
	EndIdx     int // one past the last rendered row
	ItemHeight float32
	TotalItems int

	model *virtual.Fixed
	rng   virtual.VisibleRange
}

// NewListClipper computes the rows intersecting [scrollY, scrollY+visibleHeight)
// plus one row of overscan on each side.
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) *ListClipper {
	c := &ListClipper{ItemHeight: itemHeight, TotalItems: max(totalItems, 0)}
	if c.TotalItems == 0 || itemHeight <= 0 {
		return c
	}
	c.model = virtual.NewFixed(c.TotalItems, itemHeight)
	c.rng = virtual.CalcVisibleRange(c.model, max(0, scrollY), visibleHeight, 1, false, virtual.Forward)
	c.StartIdx = c.rng.OverscanStart
	c.EndIdx = c.rng.OverscanStop + 1
	return c
}

// Range returns the underlying window, visible rows included.
func (c *ListClipper) Range() virtual.VisibleRange { return c.rng }

func (c *ListClipper) ShouldRender(idx int) bool { return idx >= c.StartIdx && idx < c.EndIdx }
func (c *ListClipper) VisibleCount() int         { return c.EndIdx - c.StartIdx }

// ItemY is the screen Y of row idx for a list whose top edge is at baseY.
func (c *ListClipper) ItemY(idx int, baseY, scrollY float32) float32 {
	return baseY + float32(idx)*c.ItemHeight - scrollY
}

func (c *ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

func (c *ListClipper) MaxScroll(visibleHeight float32) float32 {
	return max(0, c.ContentHeight()-visibleHeight)
}

// ScrollToItem returns the smallest scroll change that shows row idx.
func (c *ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if c.model == nil || idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}
	return virtual.OffsetForAlignment(c.model, idx, virtual.AlignAuto, currentScroll, visibleHeight)
}
