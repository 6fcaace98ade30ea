package virtual

import (
	"fmt"
	"strconv"
)

// ItemStyle positions one item inside the scroll content. Offset is the
// distance of the item's leading edge from the start edge of the content:
// the left edge in LTR layouts, the right edge in RTL layouts.
type ItemStyle struct {
	Offset    float32
	Top       float32
	Width     float32
	Height    float32
	Direction Direction
}

// X returns the left coordinate of the item inside content of the given width.
func (s ItemStyle) X(contentWidth float32) float32 {
	if s.Direction == RTL {
		return contentWidth - s.Offset - s.Width
	}
	return s.Offset
}

// CSS renders the style as absolute-position declarations.
func (s ItemStyle) CSS() string {
	edge := "left"
	if s.Direction == RTL {
		edge = "right"
	}
	return fmt.Sprintf("position:absolute;%s:%gpx;top:%gpx;width:%gpx;height:%gpx",
		edge, s.Offset, s.Top, s.Width, s.Height)
}

// styleGeneration identifies every input an ItemStyle depends on.
type styleGeneration struct {
	rows, columns uint64
	direction     Direction
	scrolling     bool
}

// StyleCache memoizes item styles. Entries live in a generation, which is
// replaced whenever a size model revision or the direction changes. With
// useIsScrolling set, scrolling and settled styles live in separate
// generations.
type StyleCache struct {
	generations    Memo[styleGeneration, map[string]ItemStyle]
	useIsScrolling bool
	misses         int
}

// NewStyleCache chooses the generation memo policy from perfMode.
func NewStyleCache(perfMode, useIsScrolling bool) *StyleCache {
	return &StyleCache{
		generations:    NewMemo[styleGeneration, map[string]ItemStyle](perfMode),
		useIsScrolling: useIsScrolling,
	}
}

// Get returns the style of the item at (row, column).
func (c *StyleCache) Get(rows, columns SizeModel, dir Direction, scrolling bool, row, column int) ItemStyle {
	gen := styleGeneration{
		rows:      rows.Revision(),
		columns:   columns.Revision(),
		direction: dir,
		scrolling: c.useIsScrolling && scrolling,
	}
	entries := c.generations.GetOrCompute(gen, func() map[string]ItemStyle {
		return make(map[string]ItemStyle)
	})
	key := strconv.Itoa(row) + "," + strconv.Itoa(column)
	if s, ok := entries[key]; ok {
		return s
	}
	c.misses++
	r, col := rows.Metrics(row), columns.Metrics(column)
	s := ItemStyle{
		Offset:    col.Offset,
		Top:       r.Offset,
		Width:     col.Size,
		Height:    r.Size,
		Direction: dir,
	}
	entries[key] = s
	return s
}

// Misses counts lookups that had to compute a style.
func (c *StyleCache) Misses() int { return c.misses }

// Reset drops every generation.
func (c *StyleCache) Reset() { c.generations.Reset() }
