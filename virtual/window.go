package virtual

// VisibleRange is the index window of one axis. [Start, Stop] are the items
// that intersect the viewport; [OverscanStart, OverscanStop] adds the cache
// margin and is what hosts render.
type VisibleRange struct {
	Start         int
	Stop          int
	OverscanStart int
	OverscanStop  int
}

// Len is the number of items a host renders for this range.
func (r VisibleRange) Len() int {
	return r.OverscanStop - r.OverscanStart + 1
}

// CalcVisibleRange computes the window for one axis.
//
// The overscan is asymmetric while scrolling: the side behind the direction
// of travel gets a single item, the side ahead gets max(1, overscan). When
// idle both sides get max(1, overscan). An empty axis yields the zero range.
func CalcVisibleRange(m SizeModel, offset, viewport float32, overscan int, scrolling bool, dir ScrollDir) VisibleRange {
	count := m.Count()
	if count == 0 {
		return VisibleRange{}
	}
	start := m.StartIndexForOffset(offset)
	stop := m.StopIndexForStartIndex(start, offset, viewport)

	cache := max(1, overscan)
	behind, ahead := 1, 1
	if !scrolling || dir == Backward {
		behind = cache
	}
	if !scrolling || dir == Forward {
		ahead = cache
	}
	return VisibleRange{
		Start:         start,
		Stop:          stop,
		OverscanStart: max(0, start-behind),
		OverscanStop:  max(0, min(count-1, stop+ahead)),
	}
}
