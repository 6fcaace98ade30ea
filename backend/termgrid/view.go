// Package termgrid renders a virtual.Grid onto a tcell screen, one cell of
// the grid's coordinate space per terminal cell.
package termgrid

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/vgui"
	"github.com/go-theft-auto/vgui/virtual"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// Styles colors the view.
type Styles struct {
	Cell        tcell.Style
	AltRow      tcell.Style
	Placeholder tcell.Style
	Track       tcell.Style
	Thumb       tcell.Style
}

func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Cell:        base,
		AltRow:      base.Background(tcell.ColorDarkSlateGray),
		Placeholder: base.Foreground(tcell.ColorGray),
		Track:       base.Foreground(tcell.ColorGray),
		Thumb:       base.Foreground(tcell.ColorWhite),
	}
}

// Config describes a View. Grid sizes are in terminal cells. A zero
// Grid.Width or Grid.Height fills the screen from (X, Y), leaving the last
// column for the scrollbar.
type Config struct {
	Grid virtual.GridConfig
	X, Y int

	// Text returns the content of a cell; nil prints the item key.
	Text func(row, column int) string

	Styles    Styles
	WheelStep float32 // rows per wheel notch, 3 when zero
	Scrollbar virtual.ScrollbarConfig
}

// TerminalScrollbarConfig sizes thumbs in whole rows.
func TerminalScrollbarConfig() virtual.ScrollbarConfig {
	return virtual.ScrollbarConfig{MinThumb: 1, CeilingFraction: 1.0 / 3}
}

// View owns a mounted grid and its vertical scrollbar.
type View struct {
	screen tcell.Screen
	grid   *virtual.Grid
	bar    *virtual.Scrollbar
	hub    vgui.PointerHub

	x, y   int
	text   func(row, column int) string
	styles Styles
	step   float32
	down   bool
}

// New mounts cfg.Grid on screen. Deferred work is posted to the screen's
// event queue through a Scheduler unless cfg.Grid.Scheduler is set.
func New(screen tcell.Screen, cfg Config) (*View, error) {
	sw, sh := screen.Size()
	if cfg.Grid.Width == 0 {
		cfg.Grid.Width = float32(max(0, sw-cfg.X-1))
	}
	if cfg.Grid.Height == 0 {
		cfg.Grid.Height = float32(max(0, sh-cfg.Y))
	}
	if cfg.Grid.Scheduler == nil {
		cfg.Grid.Scheduler = NewScheduler(screen)
	}
	if cfg.Scrollbar == (virtual.ScrollbarConfig{}) {
		cfg.Scrollbar = TerminalScrollbarConfig()
	}
	if cfg.Styles == (Styles{}) {
		cfg.Styles = DefaultStyles()
	}
	if cfg.WheelStep <= 0 {
		cfg.WheelStep = 3
	}
	g, err := virtual.NewGrid(cfg.Grid)
	if err != nil {
		return nil, fmt.Errorf("termgrid: %w", err)
	}
	v := &View{
		screen: screen,
		grid:   g,
		x:      cfg.X,
		y:      cfg.Y,
		text:   cfg.Text,
		styles: cfg.Styles,
		step:   cfg.WheelStep,
	}
	v.bar = virtual.NewScrollbar(virtual.AxisRow, cfg.Scrollbar, v.hub.PointerTarget(virtual.AxisRow), func(distance, steps float32) {
		g.ScrollbarScroll(virtual.AxisRow, distance, steps)
	})
	return v, nil
}

func (v *View) Grid() *virtual.Grid { return v.grid }

// Close detaches the scrollbar and cancels the grid's pending work.
func (v *View) Close() {
	v.bar.Close()
	v.grid.Close()
}

func (v *View) viewport() (w, h int) {
	fw, fh := v.grid.Viewport()
	return int(fw), int(fh)
}

func (v *View) inside(x, y int) bool {
	w, h := v.viewport()
	return x >= v.x && x < v.x+w && y >= v.y && y < v.y+h
}

// barX is the scrollbar column: right of the viewport, or left of it in RTL.
func (v *View) barX() int {
	if v.grid.Direction() == virtual.RTL {
		return v.x - 1
	}
	w, _ := v.viewport()
	return v.x + w
}

// HandleEvent feeds ev to the grid and reports whether the view should be
// redrawn.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		return RunTask(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		v.grid.Resize(float32(max(0, w-v.x-1)), float32(max(0, h-v.y)))
		return true
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		return v.handleMouse(ev)
	}
	return false
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	g := v.grid
	s := g.State()
	left, top := s.ScrollLeft, s.ScrollTop
	_, h := g.Viewport()
	back, fwd := tcell.KeyLeft, tcell.KeyRight
	if g.Direction() == virtual.RTL {
		back, fwd = fwd, back
	}
	switch ev.Key() {
	case tcell.KeyUp:
		top--
	case tcell.KeyDown:
		top++
	case back:
		left--
	case fwd:
		left++
	case tcell.KeyPgUp:
		top -= h
	case tcell.KeyPgDn:
		top += h
	case tcell.KeyHome:
		top = 0
	case tcell.KeyEnd:
		top = g.MaxOffset(virtual.AxisRow)
	default:
		return false
	}
	left = min(max(left, 0), g.MaxOffset(virtual.AxisColumn))
	top = min(max(top, 0), g.MaxOffset(virtual.AxisRow))
	g.ScrollTo(virtual.ScrollOptions{Left: &left, Top: &top})
	return true
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

func (v *View) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0

	if buttons&wheelMask != 0 {
		if !v.inside(x, y) {
			return false
		}
		var dx, dy float32
		switch {
		case buttons&tcell.WheelUp != 0:
			dy = -v.step
		case buttons&tcell.WheelDown != 0:
			dy = v.step
		case buttons&tcell.WheelLeft != 0:
			dx = -v.step
		case buttons&tcell.WheelRight != 0:
			dx = v.step
		}
		return v.grid.HandleWheel(virtual.WheelEvent{DeltaX: dx, DeltaY: dy, Shift: ev.Modifiers()&tcell.ModShift != 0})
	}

	switch {
	case pressed && !v.down:
		v.down = true
		_, h := v.viewport()
		if x != v.barX() || y < v.y || y >= v.y+h {
			return false
		}
		pos := float32(y)
		if v.bar.HitThumb(pos) {
			v.bar.BeginDrag(pos)
		} else {
			v.bar.TrackClick(pos)
		}
		return true
	case pressed:
		if v.hub.Listeners() == 0 {
			return false
		}
		v.hub.Move(vgui.Vec2{X: float32(x), Y: float32(y)})
		return true
	case v.down:
		v.down = false
		dragging := v.hub.Listeners() > 0
		v.hub.Move(vgui.Vec2{X: float32(x), Y: float32(y)})
		v.hub.Release()
		return dragging
	}
	return false
}

// Draw flushes the grid and paints the overscan window and the scrollbar.
// The caller shows the screen.
func (v *View) Draw() {
	g := v.grid
	g.Flush()
	w, h := v.viewport()
	for row := v.y; row < v.y+h; row++ {
		for col := v.x; col < v.x+w; col++ {
			v.screen.SetContent(col, row, ' ', nil, v.styles.Cell)
		}
	}
	if g.Rows().Count() > 0 && g.Columns().Count() > 0 {
		v.drawCells(w, h)
	}
	v.drawBar(h)
}

func (v *View) drawCells(w, h int) {
	g := v.grid
	s := g.State()
	placeholder := s.IsScrolling && g.UseIsScrolling()
	rows, cols := g.Range(virtual.AxisRow), g.Range(virtual.AxisColumn)
	minX, maxX := v.x, v.x+w
	for r := rows.OverscanStart; r <= rows.OverscanStop; r++ {
		style := v.styles.Cell
		if r%2 == 1 {
			style = v.styles.AltRow
		}
		for c := cols.OverscanStart; c <= cols.OverscanStop; c++ {
			is := g.ItemStyle(r, c)
			cx, cy := v.cellOrigin(is, s, w)
			cw, ch := int(is.Width), max(1, int(is.Height))
			for dy := 0; dy < ch; dy++ {
				if y := cy + dy; y >= v.y && y < v.y+h {
					fill(v.screen, max(cx, minX), min(cx+cw, maxX), y, style)
				}
			}
			if cy < v.y || cy >= v.y+h {
				continue
			}
			text, ts := "…", v.styles.Placeholder
			if !placeholder {
				text, ts = v.cellText(r, c), style
			}
			// one column of gutter between cells
			text = runewidth.Truncate(text, max(0, cw-1), "…")
			putString(v.screen, cx, cy, minX, maxX, text, ts)
		}
	}
}

func (v *View) cellText(r, c int) string {
	if v.text != nil {
		return v.text(r, c)
	}
	return v.grid.ItemKey(r, c)
}

// cellOrigin maps an item style to the screen, mirrored in RTL layouts.
func (v *View) cellOrigin(is virtual.ItemStyle, s virtual.ScrollState, w int) (int, int) {
	x := v.x + int(is.Offset-s.ScrollLeft)
	if is.Direction == virtual.RTL {
		x = v.x + w - int(is.Offset-s.ScrollLeft) - int(is.Width)
	}
	return x, v.y + int(is.Top-s.ScrollTop)
}

func (v *View) drawBar(h int) {
	g := v.grid
	x := v.barX()
	v.bar.SetLayout(float32(v.y), float32(h), g.Ratio(virtual.AxisRow))
	v.bar.SyncFrom(g.ScrollFrom(virtual.AxisRow))
	if !v.bar.Visible() {
		for y := v.y; y < v.y+h; y++ {
			v.screen.SetContent(x, y, ' ', nil, v.styles.Cell)
		}
		return
	}
	start, length := v.bar.Thumb()
	top := int(math.Floor(float64(start)))
	bottom := int(math.Ceil(float64(start + length)))
	for y := v.y; y < v.y+h; y++ {
		if y >= top && y < bottom {
			v.screen.SetContent(x, y, '█', nil, v.styles.Thumb)
		} else {
			v.screen.SetContent(x, y, '│', nil, v.styles.Track)
		}
	}
}

// Run polls screen events until ctx is done or the user presses Ctrl-C,
// redrawing after every event that changed the view.
func (v *View) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	v.Draw()
	v.screen.Show()
	for {
		ev := v.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyCtrlC {
			return nil
		}
		if v.HandleEvent(ev) {
			v.Draw()
			v.screen.Show()
		}
	}
}

func fill(s tcell.Screen, x1, x2, y int, style tcell.Style) {
	for x := x1; x < x2; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// putString draws str from x, dropping runes outside [minX, maxX). Wide runes
// take two columns and are dropped when they do not fit whole.
func putString(s tcell.Screen, x, y, minX, maxX int, str string, style tcell.Style) {
	for _, r := range str {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= minX && x+rw <= maxX {
			s.SetContent(x, y, r, nil, style)
		}
		x += rw
		if x >= maxX {
			return
		}
	}
}
