package virtual

import "math"

// OffsetForAlignment returns the scroll offset that places item index
// according to align, given the current offset and viewport size.
//
// Every alignment leaves the item intersecting the resulting viewport:
// start pins its leading edge, end pins its trailing edge, center centers it,
// auto moves the minimum distance from current, and smart switches between
// auto and center depending on how far away the item is.
func OffsetForAlignment(m SizeModel, index int, align Alignment, current, viewport float32) float32 {
	if m.Count() == 0 {
		return 0
	}
	item := m.Metrics(clampIndex(index, m.Count()))
	total := m.EstimatedTotalSize()

	lastOffset := max(0, total-viewport)
	maxOffset := max(0, min(lastOffset, item.Offset))
	minOffset := max(0, item.End()-viewport)

	if align == AlignSmart {
		if current >= minOffset-viewport && current <= maxOffset+viewport {
			align = AlignAuto
		} else {
			align = AlignCenter
		}
	}

	switch align {
	case AlignStart:
		return maxOffset
	case AlignEnd:
		return minOffset
	case AlignCenter:
		middle := float32(math.Round(float64(minOffset + (maxOffset-minOffset)/2)))
		switch {
		case middle < float32(math.Ceil(float64(viewport/2))):
			return 0
		case middle > lastOffset:
			return lastOffset
		}
		return middle
	default:
		switch {
		case current >= minOffset && current <= maxOffset:
			return current
		case current < minOffset:
			return minOffset
		}
		return maxOffset
	}
}
