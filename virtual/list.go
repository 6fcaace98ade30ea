package virtual

import (
	"errors"
	"log/slog"
	"strconv"
)

// Layout is the scroll axis of a List.
type Layout uint8

const (
	Vertical Layout = iota
	Horizontal
)

func (l Layout) String() string {
	if l == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

func (l Layout) axis() Axis {
	if l == Horizontal {
		return AxisColumn
	}
	return AxisRow
}

// ListScrollEvent is the scroll event of a List.
type ListScrollEvent struct {
	ScrollDir       ScrollDir
	ScrollOffset    float32
	UpdateRequested bool
}

// ListRangeEvent is the range event of a List.
type ListRangeEvent struct {
	CacheStart   int
	CacheEnd     int
	VisibleStart int
	VisibleEnd   int
}

// ListConfig configures a List.
type ListConfig struct {
	Total     int
	ItemSize  SizeSource
	Width     float32
	Height    float32
	Layout    Layout
	Direction Direction
	Cache     int

	PerfMode         bool
	UseIsScrolling   bool
	InitScrollOffset float32

	ItemKey func(index int, data any) string
	Data    any

	Scheduler Scheduler
	RTLProbe  RTLProbe
	Native    NativeScroller
	Logger    *slog.Logger

	OnScroll        func(ListScrollEvent)
	OnItemsRendered func(ListRangeEvent)
}

// Validate reports every invalid field.
func (c *ListConfig) Validate() error {
	var errs []error
	if c.Total < 0 {
		errs = append(errs, fieldErr("Total", ErrInvalidTotal))
	}
	if err := c.ItemSize.validate("ItemSize", c.Total); err != nil {
		errs = append(errs, err)
	}
	if c.Width < 0 {
		errs = append(errs, fieldErr("Width", ErrInvalidViewport))
	}
	if c.Height < 0 {
		errs = append(errs, fieldErr("Height", ErrInvalidViewport))
	}
	if c.Cache < 0 {
		errs = append(errs, fieldErr("Cache", ErrInvalidOverscan))
	}
	return errors.Join(errs...)
}

// List is a one-axis Grid: a single column of rows, or a single row of
// columns for a horizontal layout. The cross axis always spans the viewport.
type List struct {
	grid   *Grid
	layout Layout
}

// NewList validates cfg and mounts an engine instance.
func NewList(cfg ListConfig) (*List, error) {
	if err := cfg.Validate(); err != nil {
		loggerOr(cfg.Logger).Error("invalid list configuration", "err", err)
		return nil, err
	}
	l := &List{layout: cfg.Layout}
	gc := GridConfig{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Direction:      cfg.Direction,
		PerfMode:       cfg.PerfMode,
		UseIsScrolling: cfg.UseIsScrolling,
		Data:           cfg.Data,
		Scheduler:      cfg.Scheduler,
		RTLProbe:       cfg.RTLProbe,
		Native:         cfg.Native,
		Logger:         cfg.Logger,
	}
	if cfg.Layout == Horizontal {
		gc.TotalRow, gc.TotalColumn = 1, cfg.Total
		gc.RowHeight, gc.ColumnWidth = FixedSize(max(cfg.Height, 1)), cfg.ItemSize
		gc.ColumnCache = cfg.Cache
		gc.InitScrollLeft = cfg.InitScrollOffset
	} else {
		gc.TotalRow, gc.TotalColumn = cfg.Total, 1
		gc.RowHeight, gc.ColumnWidth = cfg.ItemSize, FixedSize(max(cfg.Width, 1))
		gc.RowCache = cfg.Cache
		gc.InitScrollTop = cfg.InitScrollOffset
	}
	if cfg.ItemKey != nil {
		gc.ItemKey = func(row, column int, data any) string {
			return cfg.ItemKey(l.index(row, column), data)
		}
	} else {
		gc.ItemKey = func(row, column int, _ any) string {
			return strconv.Itoa(l.index(row, column))
		}
	}
	if cfg.OnScroll != nil {
		gc.OnScroll = func(ev ScrollEvent) {
			out := ListScrollEvent{ScrollDir: ev.YAxisScrollDir, ScrollOffset: ev.ScrollTop, UpdateRequested: ev.UpdateRequested}
			if l.layout == Horizontal {
				out.ScrollDir, out.ScrollOffset = ev.XAxisScrollDir, ev.ScrollLeft
			}
			cfg.OnScroll(out)
		}
	}
	if cfg.OnItemsRendered != nil {
		gc.OnItemsRendered = func(ev RangeEvent) {
			out := ListRangeEvent{ev.RowCacheStart, ev.RowCacheEnd, ev.RowVisibleStart, ev.RowVisibleEnd}
			if l.layout == Horizontal {
				out = ListRangeEvent{ev.ColumnCacheStart, ev.ColumnCacheEnd, ev.ColumnVisibleStart, ev.ColumnVisibleEnd}
			}
			cfg.OnItemsRendered(out)
		}
	}
	g, err := NewGrid(gc)
	if err != nil {
		return nil, err
	}
	g.resized = l.fitCrossAxis
	l.grid = g
	return l, nil
}

func (l *List) index(row, column int) int {
	if l.layout == Horizontal {
		return column
	}
	return row
}

// Grid exposes the underlying engine.
func (l *List) Grid() *Grid      { return l.grid }
func (l *List) Layout() Layout   { return l.layout }
func (l *List) Axis() Axis       { return l.layout.axis() }
func (l *List) Model() SizeModel { return l.grid.model(l.layout.axis()) }

// Offset returns the current scroll offset along the list axis.
func (l *List) Offset() float32 { return l.grid.offset(l.layout.axis()) }

// ScrollDir returns the direction of the last offset change.
func (l *List) ScrollDir() ScrollDir {
	if l.layout == Horizontal {
		return l.grid.state.XAxisScrollDir
	}
	return l.grid.state.YAxisScrollDir
}

func (l *List) IsScrolling() bool { return l.grid.state.IsScrolling }

// ScrollTo moves to offset, clamped to be non-negative.
func (l *List) ScrollTo(offset float32) {
	if l.layout == Horizontal {
		l.grid.ScrollTo(ScrollOptions{Left: &offset})
		return
	}
	l.grid.ScrollTo(ScrollOptions{Top: &offset})
}

// ScrollToItem places item index according to align. Out of range indices are clamped.
func (l *List) ScrollToItem(index int, align Alignment) {
	if l.layout == Horizontal {
		l.grid.ScrollToItem(0, index, align)
		return
	}
	l.grid.ScrollToItem(index, 0, align)
}

// ResetAfterIndex drops cached geometry from index forward.
func (l *List) ResetAfterIndex(index int, force bool) {
	if l.layout == Horizontal {
		l.grid.ResetAfterColumnIndex(index, force)
		return
	}
	l.grid.ResetAfterRowIndex(index, force)
}

// SetTotal changes the item count.
func (l *List) SetTotal(n int) {
	if l.layout == Horizontal {
		l.grid.SetTotals(1, n)
		return
	}
	l.grid.SetTotals(n, 1)
}

func (l *List) Total() int { return l.Model().Count() }

// ItemSize returns the size source of the list axis.
func (l *List) ItemSize() SizeSource { return l.grid.SizeSource(l.layout.axis()) }

// SetItemSize replaces the size source of the list axis. Cached geometry and
// styles are dropped.
func (l *List) SetItemSize(src SizeSource) error {
	if l.layout == Horizontal {
		return l.grid.SetColumnWidth(src)
	}
	return l.grid.SetRowHeight(src)
}

// Resize schedules a viewport change. The cross axis follows the viewport.
func (l *List) Resize(width, height float32) { l.grid.Resize(width, height) }

func (l *List) fitCrossAxis(width, height float32) {
	cross, size := l.grid.columns, width
	if l.layout == Horizontal {
		cross, size = l.grid.rows, height
	}
	if f, ok := cross.(*Fixed); ok {
		f.SetSize(max(size, 1))
	}
}

func (l *List) HandleNativeScroll(ev NativeScrollEvent) { l.grid.HandleNativeScroll(ev) }
func (l *List) HandleWheel(ev WheelEvent) bool          { return l.grid.HandleWheel(ev) }
func (l *List) Flush()                                  { l.grid.Flush() }
func (l *List) Close()                                  { l.grid.Close() }

// Range returns the window along the list axis.
func (l *List) Range() VisibleRange { return l.grid.Range(l.layout.axis()) }

// ItemStyle returns the cached position style of item index.
func (l *List) ItemStyle(index int) ItemStyle {
	if l.layout == Horizontal {
		return l.grid.ItemStyle(0, index)
	}
	return l.grid.ItemStyle(index, 0)
}

func (l *List) ItemKey(index int) string {
	if l.layout == Horizontal {
		return l.grid.ItemKey(0, index)
	}
	return l.grid.ItemKey(index, 0)
}

func (l *List) Ratio() float32      { return l.grid.Ratio(l.layout.axis()) }
func (l *List) ScrollFrom() float32 { return l.grid.ScrollFrom(l.layout.axis()) }

// ScrollbarScroll applies a travel distance from the list's scrollbar.
func (l *List) ScrollbarScroll(distance, totalSteps float32) {
	l.grid.ScrollbarScroll(l.layout.axis(), distance, totalSteps)
}
