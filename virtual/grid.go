package virtual

import (
	"errors"
	"log/slog"
	"strconv"
)

// ScrollState is the scroll position of a Grid. Offsets are logical: in RTL
// layouts ScrollLeft is measured from the right edge.
type ScrollState struct {
	ScrollLeft      float32
	ScrollTop       float32
	IsScrolling     bool
	XAxisScrollDir  ScrollDir
	YAxisScrollDir  ScrollDir
	UpdateRequested bool // set when the change did not come from the native scroll container
}

// ScrollEvent is emitted synchronously on every scroll offset change.
type ScrollEvent struct {
	ScrollLeft      float32
	ScrollTop       float32
	XAxisScrollDir  ScrollDir
	YAxisScrollDir  ScrollDir
	UpdateRequested bool
}

// RangeEvent is emitted from Flush when the rendered window changed.
type RangeEvent struct {
	RowCacheStart      int
	RowCacheEnd        int
	RowVisibleStart    int
	RowVisibleEnd      int
	ColumnCacheStart   int
	ColumnCacheEnd     int
	ColumnVisibleStart int
	ColumnVisibleEnd   int
}

// NativeScrollEvent is what a host scroll container reports.
type NativeScrollEvent struct {
	ScrollLeft   float32
	ScrollTop    float32
	ScrollWidth  float32
	ScrollHeight float32
	ClientWidth  float32
	ClientHeight float32
}

// WheelEvent is a wheel or trackpad delta in pixels.
type WheelEvent struct {
	DeltaX float32
	DeltaY float32
	Shift  bool
}

// NativeScroller receives scroll positions the engine wants the host's
// scroll container to mirror. left is already in the host's RTL convention.
type NativeScroller interface {
	SetNativeScroll(left, top float32)
}

// ItemKeyFunc returns a stable identity for an item across renders.
type ItemKeyFunc func(row, column int, data any) string

// DefaultItemKey formats "row:column".
func DefaultItemKey(row, column int, _ any) string {
	return strconv.Itoa(row) + ":" + strconv.Itoa(column)
}

// ScrollOptions selects the axes ScrollTo changes. A nil field keeps the
// current offset.
type ScrollOptions struct {
	Left *float32
	Top  *float32
}

// At is a helper for building ScrollOptions.
func At(px float32) *float32 { return &px }

// GridConfig configures a Grid.
type GridConfig struct {
	TotalRow    int
	TotalColumn int
	RowHeight   SizeSource
	ColumnWidth SizeSource
	Width       float32
	Height      float32
	Direction   Direction

	// RowCache and ColumnCache are the overscan counts; values below 1 act as 1.
	RowCache    int
	ColumnCache int

	// PerfMode keeps every style generation instead of only the latest.
	PerfMode       bool
	UseIsScrolling bool

	InitScrollLeft float32
	InitScrollTop  float32

	ItemKey ItemKeyFunc
	Data    any

	// Scheduler runs the idle transition, resize recompute and wheel
	// coalescing. When nil the grid owns a FrameScheduler that Flush drains.
	Scheduler Scheduler
	RTLProbe  RTLProbe
	Native    NativeScroller
	Logger    *slog.Logger

	OnScroll        func(ScrollEvent)
	OnItemsRendered func(RangeEvent)
}

// Validate reports every invalid field.
func (c *GridConfig) Validate() error {
	var errs []error
	if c.TotalRow < 0 {
		errs = append(errs, fieldErr("TotalRow", ErrInvalidTotal))
	}
	if c.TotalColumn < 0 {
		errs = append(errs, fieldErr("TotalColumn", ErrInvalidTotal))
	}
	if err := c.RowHeight.validate("RowHeight", c.TotalRow); err != nil {
		errs = append(errs, err)
	}
	if err := c.ColumnWidth.validate("ColumnWidth", c.TotalColumn); err != nil {
		errs = append(errs, err)
	}
	if c.Width < 0 {
		errs = append(errs, fieldErr("Width", ErrInvalidViewport))
	}
	if c.Height < 0 {
		errs = append(errs, fieldErr("Height", ErrInvalidViewport))
	}
	if c.RowCache < 0 {
		errs = append(errs, fieldErr("RowCache", ErrInvalidOverscan))
	}
	if c.ColumnCache < 0 {
		errs = append(errs, fieldErr("ColumnCache", ErrInvalidOverscan))
	}
	return errors.Join(errs...)
}

// Grid is the two-axis virtualization engine. It is not safe for concurrent
// use; drive it from the host's UI goroutine.
type Grid struct {
	cfg     GridConfig
	rows    SizeModel
	columns SizeModel
	width   float32
	height  float32
	logger  *slog.Logger
	rtlType RTLOffsetType

	state  ScrollState
	styles *StyleCache

	sched    Scheduler
	ownSched *FrameScheduler

	cancelIdle   func()
	cancelResize func()
	cancelWheel  func()
	resized      func(width, height float32)
	wheelX       float32
	wheelY       float32

	dirty      bool
	writeBack  bool
	rowRange   VisibleRange
	colRange   VisibleRange
	lastRange  RangeEvent
	emitted    bool
	nativeLeft float32
	nativeTop  float32
}

// NewGrid validates cfg and mounts an engine instance.
func NewGrid(cfg GridConfig) (*Grid, error) {
	logger := loggerOr(cfg.Logger)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid grid configuration", "err", err)
		return nil, err
	}
	g := &Grid{
		cfg:     cfg,
		rows:    cfg.RowHeight.Model(cfg.TotalRow, logger),
		columns: cfg.ColumnWidth.Model(cfg.TotalColumn, logger),
		width:   cfg.Width,
		height:  cfg.Height,
		logger:  logger,
		styles:  NewStyleCache(cfg.PerfMode, cfg.UseIsScrolling),
		sched:   cfg.Scheduler,
		state: ScrollState{
			ScrollLeft: max(0, cfg.InitScrollLeft),
			ScrollTop:  max(0, cfg.InitScrollTop),
		},
		dirty: true,
	}
	if g.sched == nil {
		g.ownSched = NewFrameScheduler()
		g.sched = g.ownSched
	}
	if cfg.Direction == RTL {
		g.rtlType = DetectRTLOffsetType(cfg.RTLProbe)
	}
	if g.state.ScrollLeft > 0 || g.state.ScrollTop > 0 {
		g.state.UpdateRequested = true
		g.writeBack = true
	}
	return g, nil
}

// State returns the current scroll state. Writes are visible immediately;
// only range recompute and native write-back wait for Flush.
func (g *Grid) State() ScrollState { return g.state }

// Rows and Columns expose the size models.
func (g *Grid) Rows() SizeModel    { return g.rows }
func (g *Grid) Columns() SizeModel { return g.columns }

func (g *Grid) Direction() Direction { return g.cfg.Direction }

// UseIsScrolling reports whether items should be told about scrolling.
func (g *Grid) UseIsScrolling() bool { return g.cfg.UseIsScrolling }

// Viewport returns the current width and height.
func (g *Grid) Viewport() (width, height float32) { return g.width, g.height }

func (g *Grid) model(axis Axis) SizeModel {
	if axis == AxisColumn {
		return g.columns
	}
	return g.rows
}

func (g *Grid) viewport(axis Axis) float32 {
	if axis == AxisColumn {
		return g.width
	}
	return g.height
}

func (g *Grid) offset(axis Axis) float32 {
	if axis == AxisColumn {
		return g.state.ScrollLeft
	}
	return g.state.ScrollTop
}

// EstimatedTotalSize returns the content extent along axis.
func (g *Grid) EstimatedTotalSize(axis Axis) float32 {
	return g.model(axis).EstimatedTotalSize()
}

// MaxOffset is the largest offset that still fills the viewport.
func (g *Grid) MaxOffset(axis Axis) float32 {
	return max(0, g.EstimatedTotalSize(axis)-g.viewport(axis))
}

// Range returns the window computed by the last Flush.
func (g *Grid) Range(axis Axis) VisibleRange {
	if axis == AxisColumn {
		return g.colRange
	}
	return g.rowRange
}

// ItemStyle returns the cached position style of the item at (row, column).
func (g *Grid) ItemStyle(row, column int) ItemStyle {
	return g.styles.Get(g.rows, g.columns, g.cfg.Direction, g.state.IsScrolling, row, column)
}

// Styles exposes the style cache.
func (g *Grid) Styles() *StyleCache { return g.styles }

// ItemKey returns the host's identity for the item at (row, column).
func (g *Grid) ItemKey(row, column int) string {
	if g.cfg.ItemKey != nil {
		return g.cfg.ItemKey(row, column, g.cfg.Data)
	}
	return DefaultItemKey(row, column, g.cfg.Data)
}

// SetData replaces the value passed to ItemKey and forces a re-render.
func (g *Grid) SetData(data any) {
	g.cfg.Data = data
	g.dirty = true
}

// SetTotals changes the item counts. Offsets are left alone; the next Flush
// recomputes the window.
func (g *Grid) SetTotals(rows, columns int) {
	g.rows.SetCount(rows)
	g.columns.SetCount(columns)
	g.dirty = true
}

// SetRowHeight replaces the row size source, which starts a new style generation.
func (g *Grid) SetRowHeight(src SizeSource) error {
	if err := src.validate("RowHeight", g.rows.Count()); err != nil {
		return err
	}
	g.rows = src.Model(g.rows.Count(), g.logger)
	g.cfg.RowHeight = src
	g.restyle()
	return nil
}

// SetColumnWidth replaces the column size source, which starts a new style generation.
func (g *Grid) SetColumnWidth(src SizeSource) error {
	if err := src.validate("ColumnWidth", g.columns.Count()); err != nil {
		return err
	}
	g.columns = src.Model(g.columns.Count(), g.logger)
	g.cfg.ColumnWidth = src
	g.restyle()
	return nil
}

// SizeSource returns the source the size model of axis was built from.
func (g *Grid) SizeSource(axis Axis) SizeSource {
	if axis == AxisColumn {
		return g.cfg.ColumnWidth
	}
	return g.cfg.RowHeight
}

// restyle drops every style generation. A fresh model starts over at
// revision zero, so its generation key can collide with an old one.
func (g *Grid) restyle() {
	g.styles.Reset()
	g.dirty = true
}

// SetDirection switches the layout direction.
func (g *Grid) SetDirection(dir Direction) {
	if dir == g.cfg.Direction {
		return
	}
	g.cfg.Direction = dir
	if dir == RTL {
		g.rtlType = DetectRTLOffsetType(g.cfg.RTLProbe)
	}
	g.dirty = true
}

// ScrollTo moves to the given offsets. Each axis is clamped to be
// non-negative; a call that changes nothing is a no-op.
func (g *Grid) ScrollTo(opts ScrollOptions) {
	left, top := g.state.ScrollLeft, g.state.ScrollTop
	if opts.Left != nil {
		left = max(0, *opts.Left)
	}
	if opts.Top != nil {
		top = max(0, *opts.Top)
	}
	g.setOffsets(left, top, true)
}

// ScrollToItem scrolls so the item at (row, column) is placed according to
// align. Out of range indices are clamped.
func (g *Grid) ScrollToItem(row, column int, align Alignment) {
	left, top := g.state.ScrollLeft, g.state.ScrollTop
	if n := g.rows.Count(); n > 0 {
		if r := clampIndex(row, n); r != row {
			g.logger.Debug("scrollToItem row clamped", "row", row, "clamped", r)
			row = r
		}
		top = OffsetForAlignment(g.rows, row, align, top, g.height)
	}
	if n := g.columns.Count(); n > 0 {
		if c := clampIndex(column, n); c != column {
			g.logger.Debug("scrollToItem column clamped", "column", column, "clamped", c)
			column = c
		}
		left = OffsetForAlignment(g.columns, column, align, left, g.width)
	}
	g.ScrollTo(ScrollOptions{Left: &left, Top: &top})
}

// HandleNativeScroll applies a scroll position reported by the host's
// scroll container. Positions that equal the current state, including
// echoes of the engine's own write-back, are ignored.
func (g *Grid) HandleNativeScroll(ev NativeScrollEvent) {
	left := ev.ScrollLeft
	if g.cfg.Direction == RTL {
		left = NormalizeScrollLeft(left, ev.ScrollWidth, ev.ClientWidth, g.rtlType)
	}
	top := ev.ScrollTop
	if ev.ScrollHeight > 0 {
		top = min(top, ev.ScrollHeight-ev.ClientHeight)
	}
	left, top = max(0, left), max(0, top)
	g.nativeLeft, g.nativeTop = ev.ScrollLeft, ev.ScrollTop
	g.setOffsets(left, top, false)
}

// HandleWheel translates a wheel delta. Deltas are locked to the dominant
// axis, shift turns vertical into horizontal motion, and vertical motion
// over content without vertical overflow scrolls horizontally. It reports
// whether the delta was consumed; an unconsumed delta is at an edge and
// should propagate to an outer scroll container. Consumed deltas are
// accumulated and applied on the next scheduler tick.
func (g *Grid) HandleWheel(ev WheelEvent) bool {
	x, y := ev.DeltaX, ev.DeltaY
	if abs(x) > abs(y) {
		y = 0
	} else {
		x = 0
	}
	if ev.Shift && y != 0 {
		x, y = y, 0
	}
	if y != 0 && g.MaxOffset(AxisRow) <= 0 && g.MaxOffset(AxisColumn) > 0 {
		x, y = y, 0
	}
	if g.atEdge(g.wheelX, g.wheelY) && g.atEdge(g.wheelX+x, g.wheelY+y) {
		return false
	}
	g.wheelX += x
	g.wheelY += y
	if g.cancelWheel == nil {
		g.cancelWheel = g.sched.Schedule(g.applyWheel)
	}
	return true
}

func (g *Grid) applyWheel() {
	x, y := g.wheelX, g.wheelY
	g.wheelX, g.wheelY, g.cancelWheel = 0, 0, nil
	left := clamp(g.state.ScrollLeft+x, 0, g.MaxOffset(AxisColumn))
	top := clamp(g.state.ScrollTop+y, 0, g.MaxOffset(AxisRow))
	g.setOffsets(left, top, true)
}

// atEdge reports whether a pending delta of (x, y) would push against the
// content edge on both axes.
func (g *Grid) atEdge(x, y float32) bool {
	left, top := g.state.ScrollLeft, g.state.ScrollTop
	atLeft := left <= 0
	atRight := left >= g.MaxOffset(AxisColumn)
	atTop := top <= 0
	atBottom := top >= g.MaxOffset(AxisRow)
	xEdge := (x <= 0 && atLeft) || (x >= 0 && atRight) || x == 0
	yEdge := (y <= 0 && atTop) || (y >= 0 && atBottom) || y == 0
	return xEdge && yEdge
}

// Edges reports whether the viewport touches each content edge.
func (g *Grid) Edges() (top, bottom, left, right bool) {
	s := g.state
	return s.ScrollTop <= 0, s.ScrollTop >= g.MaxOffset(AxisRow),
		s.ScrollLeft <= 0, s.ScrollLeft >= g.MaxOffset(AxisColumn)
}

// Resize schedules a viewport size change. A later Resize before the tick
// replaces it.
func (g *Grid) Resize(width, height float32) {
	if g.cancelResize != nil {
		g.cancelResize()
	}
	g.cancelResize = g.sched.Schedule(func() {
		g.cancelResize = nil
		if width == g.width && height == g.height {
			return
		}
		g.width, g.height = max(0, width), max(0, height)
		g.dirty = true
		if g.resized != nil {
			g.resized(g.width, g.height)
		}
	})
}

// ResetAfterIndices drops cached geometry from row and column forward. With
// force the next Flush recomputes the window even if nothing else changed.
func (g *Grid) ResetAfterIndices(row, column int, force bool) {
	g.rows.ResetAfterIndex(row)
	g.columns.ResetAfterIndex(column)
	if force {
		g.dirty = true
	}
}

// ResetAfterRowIndex drops cached row geometry from row forward.
func (g *Grid) ResetAfterRowIndex(row int, force bool) {
	g.rows.ResetAfterIndex(row)
	if force {
		g.dirty = true
	}
}

// ResetAfterColumnIndex drops cached column geometry from column forward.
func (g *Grid) ResetAfterColumnIndex(column int, force bool) {
	g.columns.ResetAfterIndex(column)
	if force {
		g.dirty = true
	}
}

// Ratio returns the visible-to-total percentage of axis, for scrollbars.
func (g *Grid) Ratio(axis Axis) float32 {
	total := g.EstimatedTotalSize(axis)
	if total <= 0 {
		return 100
	}
	return g.viewport(axis) / total * 100
}

// ScrollFrom returns the scroll position of axis as a fraction of its range.
func (g *Grid) ScrollFrom(axis Axis) float32 {
	maxOffset := g.MaxOffset(axis)
	if maxOffset <= 0 {
		return 0
	}
	return clamp(g.offset(axis)/maxOffset, 0, 1)
}

// ScrollbarScroll applies a scrollbar travel distance reported by a
// Scrollbar on axis.
func (g *Grid) ScrollbarScroll(axis Axis, distance, totalSteps float32) {
	offset := OffsetFromTravel(distance, totalSteps, g.EstimatedTotalSize(axis), g.viewport(axis))
	if axis == AxisColumn {
		g.ScrollTo(ScrollOptions{Left: &offset})
		return
	}
	g.ScrollTo(ScrollOptions{Top: &offset})
}

// Flush is the render tick. It recomputes the window when inputs changed,
// emits RangeEvent when the window moved, writes requested positions back
// to the native scroller, and then drains the grid's own scheduler.
func (g *Grid) Flush() {
	if g.dirty {
		g.dirty = false
		g.recompute()
	}
	if g.writeBack {
		g.writeBack = false
		g.syncNative()
	}
	if g.ownSched != nil {
		g.ownSched.Flush()
	}
}

// Close cancels pending deferred work. The grid must not be used afterwards.
func (g *Grid) Close() {
	for _, cancel := range []func(){g.cancelIdle, g.cancelResize, g.cancelWheel} {
		if cancel != nil {
			cancel()
		}
	}
	g.cancelIdle, g.cancelResize, g.cancelWheel = nil, nil, nil
}

func (g *Grid) recompute() {
	s := g.state
	g.rowRange = CalcVisibleRange(g.rows, s.ScrollTop, g.height, g.cfg.RowCache, s.IsScrolling, s.YAxisScrollDir)
	g.colRange = CalcVisibleRange(g.columns, s.ScrollLeft, g.width, g.cfg.ColumnCache, s.IsScrolling, s.XAxisScrollDir)
	ev := RangeEvent{
		RowCacheStart:      g.rowRange.OverscanStart,
		RowCacheEnd:        g.rowRange.OverscanStop,
		RowVisibleStart:    g.rowRange.Start,
		RowVisibleEnd:      g.rowRange.Stop,
		ColumnCacheStart:   g.colRange.OverscanStart,
		ColumnCacheEnd:     g.colRange.OverscanStop,
		ColumnVisibleStart: g.colRange.Start,
		ColumnVisibleEnd:   g.colRange.Stop,
	}
	if g.emitted && ev == g.lastRange {
		return
	}
	g.emitted = true
	g.lastRange = ev
	if g.cfg.OnItemsRendered != nil {
		g.cfg.OnItemsRendered(ev)
	}
}

func (g *Grid) syncNative() {
	if g.cfg.Native == nil || !g.state.UpdateRequested {
		return
	}
	left := g.state.ScrollLeft
	if g.cfg.Direction == RTL {
		left = DenormalizeScrollLeft(left, g.EstimatedTotalSize(AxisColumn), g.width, g.rtlType)
	}
	if left == g.nativeLeft && g.state.ScrollTop == g.nativeTop {
		return
	}
	g.nativeLeft, g.nativeTop = left, g.state.ScrollTop
	g.cfg.Native.SetNativeScroll(left, g.state.ScrollTop)
}

func (g *Grid) setOffsets(left, top float32, requested bool) {
	s := &g.state
	if left == s.ScrollLeft && top == s.ScrollTop {
		return
	}
	if left != s.ScrollLeft {
		s.XAxisScrollDir = dirOf(s.ScrollLeft, left)
	}
	if top != s.ScrollTop {
		s.YAxisScrollDir = dirOf(s.ScrollTop, top)
	}
	s.ScrollLeft, s.ScrollTop = left, top
	s.IsScrolling = true
	s.UpdateRequested = requested
	g.dirty = true
	g.writeBack = requested

	if g.cancelIdle != nil {
		g.cancelIdle()
	}
	g.cancelIdle = g.sched.Schedule(g.becomeIdle)

	if g.cfg.OnScroll != nil {
		g.cfg.OnScroll(ScrollEvent{
			ScrollLeft:      s.ScrollLeft,
			ScrollTop:       s.ScrollTop,
			XAxisScrollDir:  s.XAxisScrollDir,
			YAxisScrollDir:  s.YAxisScrollDir,
			UpdateRequested: s.UpdateRequested,
		})
	}
}

func (g *Grid) becomeIdle() {
	g.cancelIdle = nil
	if !g.state.IsScrolling {
		return
	}
	g.state.IsScrolling = false
	g.dirty = true
}

func dirOf(from, to float32) ScrollDir {
	if to > from {
		return Forward
	}
	return Backward
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func clamp(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
