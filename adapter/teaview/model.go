// Package teaview is a Bubble Tea model that shows a virtual.List. Only the
// rows in the list's overscan window are rendered on each View call, so the
// item count does not affect frame cost.
package teaview

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/vgui"
	"github.com/go-theft-auto/vgui/virtual"
)

// DefaultTick is the delay between a deferred engine task being queued and
// the flush that runs it.
const DefaultTick = 50 * time.Millisecond

// Styles renders the parts of the model.
type Styles struct {
	Row         lipgloss.Style
	Selected    lipgloss.Style
	Placeholder lipgloss.Style
	Track       lipgloss.Style
	Thumb       lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Row:         lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Reverse(true).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Track:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Thumb:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	}
}

// PlainStyles returns styles without any attributes.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Row: s, Selected: s, Placeholder: s, Track: s, Thumb: s}
}

// Config describes a Model. Sizes are in terminal lines and columns.
type Config struct {
	Total int
	// ItemSize is one line per item when zero.
	ItemSize virtual.SizeSource
	// Width and Height include the scrollbar column. They are usually left
	// zero and set by the first tea.WindowSizeMsg.
	Width, Height  int
	Cache          int
	UseIsScrolling bool

	// Render returns the text of an item; nil prints the item key.
	Render func(index int, selected bool) string

	Styles    *Styles
	WheelStep float32 // lines per wheel notch, 3 when zero
	Tick      time.Duration
}

type flushMsg struct{ m *Model }

// Model is a tea.Model over a mounted virtual.List with a vertical
// scrollbar in its last column.
type Model struct {
	list  *virtual.List
	sched *virtual.FrameScheduler
	bar   *virtual.Scrollbar
	hub   vgui.PointerHub

	render   func(index int, selected bool) string
	styles   Styles
	step     float32
	tick     time.Duration
	scrollUI bool

	width, height int
	selected      int
	ticking       bool
}

var _ tea.Model = (*Model)(nil)

// New mounts a vertical list for cfg.
func New(cfg Config) (*Model, error) {
	if cfg.ItemSize.IsZero() {
		cfg.ItemSize = virtual.FixedSize(1)
	}
	if cfg.WheelStep <= 0 {
		cfg.WheelStep = 3
	}
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	m := &Model{
		sched:    virtual.NewFrameScheduler(),
		render:   cfg.Render,
		styles:   DefaultStyles(),
		step:     cfg.WheelStep,
		tick:     cfg.Tick,
		scrollUI: cfg.UseIsScrolling,
		width:    max(0, cfg.Width),
		height:   max(0, cfg.Height),
	}
	if cfg.Styles != nil {
		m.styles = *cfg.Styles
	}
	l, err := virtual.NewList(virtual.ListConfig{
		Total:          cfg.Total,
		ItemSize:       cfg.ItemSize,
		Width:          float32(max(0, m.width-1)),
		Height:         float32(m.height),
		Cache:          cfg.Cache,
		UseIsScrolling: cfg.UseIsScrolling,
		Scheduler:      m.sched,
	})
	if err != nil {
		return nil, err
	}
	m.list = l
	cb := virtual.ScrollbarConfig{MinThumb: 1, CeilingFraction: 1.0 / 3}
	m.bar = virtual.NewScrollbar(virtual.AxisRow, cb, m.hub.PointerTarget(virtual.AxisRow), l.ScrollbarScroll)
	return m, nil
}

func (m *Model) List() *virtual.List { return m.list }
func (m *Model) Selected() int       { return m.selected }

// SetSelected moves the selection, clamped to the list, and scrolls it into
// view.
func (m *Model) SetSelected(index int) {
	n := m.list.Total()
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = min(max(index, 0), n-1)
	m.list.ScrollToItem(m.selected, virtual.AlignAuto)
}

// Close detaches the scrollbar and cancels deferred work.
func (m *Model) Close() {
	m.bar.Close()
	m.list.Close()
}

// Init flushes the mount.
func (m *Model) Init() tea.Cmd {
	return m.schedule()
}

// Update handles window, key, mouse and flush messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flushMsg:
		if msg.m != m {
			return m, nil
		}
		m.ticking = false
		m.sched.Flush()
		m.list.Flush()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.Resize(float32(max(0, msg.Width-1)), float32(msg.Height))
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, m.schedule()
}

// schedule arranges a flush when deferred work is queued and none is
// already on its way.
func (m *Model) schedule() tea.Cmd {
	if m.ticking || m.sched.Pending() == 0 {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.tick, func(time.Time) tea.Msg { return flushMsg{m} })
}

func (m *Model) page() int {
	r := m.list.Range()
	return max(1, r.Stop-r.Start+1)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.page())
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.page())
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(m.list.Total() - 1)
	case tea.KeyRunes:
		switch msg.String() {
		case "k":
			m.SetSelected(m.selected - 1)
		case "j":
			m.SetSelected(m.selected + 1)
		case "g":
			m.SetSelected(0)
		case "G":
			m.SetSelected(m.list.Total() - 1)
		}
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Y < 0 || msg.Y >= m.height {
		if msg.Action == tea.MouseActionRelease {
			m.release(msg)
		}
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.HandleWheel(virtual.WheelEvent{DeltaY: -m.step, Shift: msg.Shift})
		return
	case tea.MouseButtonWheelDown:
		m.list.HandleWheel(virtual.WheelEvent{DeltaY: m.step, Shift: msg.Shift})
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if msg.X == m.width-1 {
			m.pressBar(float32(msg.Y))
			return
		}
		if i, ok := m.itemAt(msg.Y); ok {
			m.SetSelected(i)
		}
	case tea.MouseActionMotion:
		m.hub.Move(vgui.Vec2{X: float32(msg.X), Y: float32(msg.Y)})
	case tea.MouseActionRelease:
		m.release(msg)
	}
}

func (m *Model) pressBar(pos float32) {
	m.syncBar()
	if !m.bar.Visible() {
		return
	}
	if m.bar.HitThumb(pos) {
		m.bar.BeginDrag(pos)
	} else {
		m.bar.TrackClick(pos)
	}
}

func (m *Model) release(msg tea.MouseMsg) {
	m.hub.Move(vgui.Vec2{X: float32(msg.X), Y: float32(msg.Y)})
	m.hub.Release()
}

// itemAt returns the item drawn on line y of the viewport.
func (m *Model) itemAt(y int) (int, bool) {
	r := m.list.Range()
	if m.list.Total() == 0 {
		return 0, false
	}
	pos := m.list.Offset() + float32(y)
	for i := r.OverscanStart; i <= r.OverscanStop; i++ {
		is := m.list.ItemStyle(i)
		if pos >= is.Top && pos < is.Top+is.Height {
			return i, true
		}
	}
	return 0, false
}

func (m *Model) syncBar() {
	m.bar.SetLayout(0, float32(m.height), m.list.Ratio())
	m.bar.SyncFrom(m.list.ScrollFrom())
}

// View renders the viewport lines followed by the scrollbar column.
func (m *Model) View() string {
	m.list.Flush()
	if m.height <= 0 || m.width <= 0 {
		return ""
	}
	vw := max(0, m.width-1)
	lines := make([]string, m.height)
	blank := m.styles.Row.Width(vw).Render("")
	for y := range lines {
		lines[y] = blank
	}
	if m.list.Total() > 0 {
		m.drawRows(lines, vw)
	}

	m.syncBar()
	bar := m.barCells()
	var b strings.Builder
	for y, line := range lines {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		b.WriteString(bar[y])
	}
	return b.String()
}

func (m *Model) drawRows(lines []string, vw int) {
	r := m.list.Range()
	offset := m.list.Offset()
	placeholder := m.scrollUI && m.list.IsScrolling()
	for i := r.OverscanStart; i <= r.OverscanStop; i++ {
		is := m.list.ItemStyle(i)
		top := int(math.Floor(float64(is.Top - offset)))
		if top < 0 || top >= len(lines) {
			continue
		}
		style := m.styles.Row
		if i == m.selected {
			style = m.styles.Selected
		}
		text := "…"
		switch {
		case placeholder:
			style = m.styles.Placeholder
		case m.render != nil:
			text = m.render(i, i == m.selected)
		default:
			text = m.list.ItemKey(i)
		}
		lines[top] = style.Width(vw).Render(runewidth.Truncate(text, vw, "…"))
	}
}

func (m *Model) barCells() []string {
	cells := make([]string, m.height)
	if !m.bar.Visible() {
		for y := range cells {
			cells[y] = " "
		}
		return cells
	}
	start, length := m.bar.Thumb()
	top := int(math.Floor(float64(start)))
	bottom := int(math.Ceil(float64(start + length)))
	thumb, track := m.styles.Thumb.Render("█"), m.styles.Track.Render("│")
	for y := range cells {
		if y >= top && y < bottom {
			cells[y] = thumb
		} else {
			cells[y] = track
		}
	}
	return cells
}
