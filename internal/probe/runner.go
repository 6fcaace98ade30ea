package probe

import (
	"fmt"
	"io"

	"github.com/go-theft-auto/vgui"
	"github.com/go-theft-auto/vgui/virtual"
)

const maxSettleFrames = 16

// Runner mounts a scenario's grid and plays its steps. Each step is one
// frame: the action and a grid flush, then the state report, then the
// scheduler flush that ends the frame.
type Runner struct {
	out   io.Writer
	sc    *Scenario
	grid  *virtual.Grid
	sched *virtual.FrameScheduler
	hub   vgui.PointerHub
	bars  map[virtual.Axis]*virtual.Scrollbar
}

// NewRunner mounts sc. Events are written to out as they are emitted.
func NewRunner(sc *Scenario, out io.Writer) (*Runner, error) {
	cfg, err := sc.GridConfig()
	if err != nil {
		return nil, err
	}
	r := &Runner{out: out, sc: sc, sched: virtual.NewFrameScheduler()}
	cfg.Scheduler = r.sched
	cfg.OnScroll = r.printScroll
	cfg.OnItemsRendered = r.printRange
	g, err := virtual.NewGrid(cfg)
	if err != nil {
		return nil, fmt.Errorf("mount: %w", err)
	}
	r.grid = g
	r.bars = make(map[virtual.Axis]*virtual.Scrollbar, 2)
	for _, axis := range []virtual.Axis{virtual.AxisRow, virtual.AxisColumn} {
		axis := axis
		r.bars[axis] = virtual.NewScrollbar(axis, virtual.DefaultScrollbarConfig(), r.hub.PointerTarget(axis), func(distance, steps float32) {
			g.ScrollbarScroll(axis, distance, steps)
		})
	}
	fmt.Fprintf(out, "mount rows=%d columns=%d viewport=%gx%g direction=%s\n",
		sc.Rows.Count, sc.Columns.Count, cfg.Width, cfg.Height, cfg.Direction)
	return r, nil
}

func (r *Runner) Grid() *virtual.Grid { return r.grid }

// Close detaches the scrollbars and cancels pending work.
func (r *Runner) Close() {
	for _, b := range r.bars {
		b.Close()
	}
	r.grid.Close()
}

// Run plays every step, then keeps running frames until no deferred work is
// left so the final idle transition is reported.
func (r *Runner) Run() error {
	r.grid.Flush()
	r.sched.Flush()
	for i, st := range r.sc.Steps {
		if err := r.Step(st); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		r.report(i+1, st.Name())
		r.sched.Flush()
	}
	for i := 0; i < maxSettleFrames && r.sched.Pending() > 0; i++ {
		r.grid.Flush()
		r.sched.Flush()
	}
	r.grid.Flush()
	r.report(len(r.sc.Steps)+1, "settle")
	return nil
}

// Step applies st and flushes the grid. Deferred work it queued runs at the
// next scheduler flush.
func (r *Runner) Step(st Step) error {
	if err := st.validate(); err != nil {
		return err
	}
	g := r.grid
	switch {
	case st.Scroll != nil:
		g.ScrollTo(virtual.ScrollOptions{Left: st.Scroll.Left, Top: st.Scroll.Top})
	case st.Wheel != nil:
		g.HandleWheel(virtual.WheelEvent{DeltaX: st.Wheel.DX, DeltaY: st.Wheel.DY, Shift: st.Wheel.Shift})
	case st.ScrollToItem != nil:
		align, _ := virtual.ParseAlignment(st.ScrollToItem.Align)
		g.ScrollToItem(st.ScrollToItem.Row, st.ScrollToItem.Column, align)
	case st.Reset != nil:
		g.ResetAfterIndices(st.Reset.Row, st.Reset.Column, st.Reset.Force)
	case st.Drag != nil:
		axis, _ := parseAxis(st.Drag.Axis)
		r.drag(axis, st.Drag.From, st.Drag.To)
	case st.Resize != nil:
		g.Resize(st.Resize.Width, st.Resize.Height)
	}
	g.Flush()
	return nil
}

// drag runs a full press, move and release on the scrollbar of axis. The
// track spans the viewport along the axis.
func (r *Runner) drag(axis virtual.Axis, from, to float32) {
	bar := r.bars[axis]
	w, h := r.grid.Viewport()
	track := h
	if axis == virtual.AxisColumn {
		track = w
	}
	bar.SetLayout(0, track, r.grid.Ratio(axis))
	bar.SyncFrom(r.grid.ScrollFrom(axis))
	if !bar.HitThumb(from) {
		bar.TrackClick(from)
		return
	}
	bar.BeginDrag(from)
	pos := vgui.Vec2{X: to, Y: to}
	r.hub.Move(pos)
	r.hub.Release()
}

func (r *Runner) report(n int, name string) {
	s := r.grid.State()
	fmt.Fprintf(r.out, "step %d %s: left=%g top=%g scrolling=%t\n", n, name, s.ScrollLeft, s.ScrollTop, s.IsScrolling)
}

func (r *Runner) printScroll(ev virtual.ScrollEvent) {
	fmt.Fprintf(r.out, "scroll left=%g top=%g dir=%s/%s requested=%t\n",
		ev.ScrollLeft, ev.ScrollTop, ev.XAxisScrollDir, ev.YAxisScrollDir, ev.UpdateRequested)
}

func (r *Runner) printRange(ev virtual.RangeEvent) {
	fmt.Fprintf(r.out, "range rows=%d-%d visible=%d-%d columns=%d-%d visible=%d-%d\n",
		ev.RowCacheStart, ev.RowCacheEnd, ev.RowVisibleStart, ev.RowVisibleEnd,
		ev.ColumnCacheStart, ev.ColumnCacheEnd, ev.ColumnVisibleStart, ev.ColumnVisibleEnd)
}
