package vgui

import "github.com/go-theft-auto/vgui/virtual"

// Context holds the state of one frame. It is not a context.Context.
type Context struct {
	DrawList *DrawList
	Input    *InputState

	DisplaySize   Vec2
	DeltaTime     float32
	FrameCount    uint64
	FontTextureID uint32

	// WantCaptureMouse is set when a widget consumed the pointer this frame,
	// for example a wheel delta that scrolled a virtual grid.
	WantCaptureMouse bool

	style      Style
	styleStack []Style
	cursor     Vec2

	idStack   []ID
	idCounter uint32

	// activeID is the widget holding the pointer, e.g. a dragged scrollbar.
	activeID ID

	sched   *virtual.FrameScheduler
	hub     *PointerHub
	pointer PointerSource
}

// NewContext returns a context with the default style.
func NewContext() *Context {
	hub := &PointerHub{}
	return &Context{
		style:      DefaultStyle(),
		styleStack: make([]Style, 0, 8),
		idStack:    make([]ID, 0, 32),
		sched:      virtual.NewFrameScheduler(),
		hub:        hub,
		pointer:    hub,
	}
}

func (ctx *Context) Style() Style         { return ctx.style }
func (ctx *Context) SetStyle(style Style) { ctx.style = style }

// PushStyle overrides the style until the matching PopStyle.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

func (ctx *Context) PopStyle() {
	if n := len(ctx.styleStack); n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Scheduler is the frame scheduler that mounted engines defer work to.
// GUI.End flushes it.
func (ctx *Context) Scheduler() *virtual.FrameScheduler { return ctx.sched }

// Pointer returns the source of window-level pointer targets.
func (ctx *Context) Pointer() PointerSource { return ctx.pointer }

// PointerHub returns the context's own hub, which replays InputState.
func (ctx *Context) PointerHub() *PointerHub { return ctx.hub }

func (ctx *Context) setPointerSource(src PointerSource) {
	if src == nil {
		src = ctx.hub
	}
	ctx.pointer = src
}

// Reset prepares the context for a new frame and evicts widget state that
// was not used during the previous one.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	NextFrame()
	ctx.cursor = Vec2{}
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false
	if ctx.Input != nil && !ctx.Input.MouseDown(MouseButtonLeft) {
		ctx.activeID = 0
	}
}

func (ctx *Context) isHovered(rect Rect) bool {
	return ctx.Input != nil && rect.Contains(ctx.Input.MousePos())
}

// IsHovered reports whether the pointer is over rect.
func (ctx *Context) IsHovered(rect Rect) bool { return ctx.isHovered(rect) }

// isClicked reports a left press inside rect this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	hovered := ctx.isHovered(rect)
	if guiVerbose() {
		guiLogger.Debug("click", "id", id, "rect", rect, "mouse", ctx.Input.MousePos(), "hit", hovered)
	}
	return hovered
}

func (ctx *Context) IsClicked(id ID, rect Rect) bool { return ctx.isClicked(id, rect) }

// SetActive records id as the widget holding the pointer. Pass 0 to release.
func (ctx *Context) SetActive(id ID) { ctx.activeID = id }
func (ctx *Context) IsActive(id ID) bool { return id != 0 && ctx.activeID == id }

// SetCursorPos places the next widget.
func (ctx *Context) SetCursorPos(x, y float32) { ctx.cursor = Vec2{X: x, Y: y} }
func (ctx *Context) GetCursorPos() Vec2        { return ctx.cursor }

// AdvanceCursor moves the cursor below a widget of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
}

// LineHeight is the height of one line of text in the current style.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// MeasureText returns the size of text in the built-in monospace font.
func (ctx *Context) MeasureText(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * ctx.style.CharWidth * ctx.style.FontScale, Y: ctx.LineHeight()}
}

// AddText draws text with the current style.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// Text draws a line of text at the cursor.
func (ctx *Context) Text(text string) {
	pos := ctx.cursor
	ctx.AddText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}
