package vgui

// Renderer draws the frame's DrawList.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI drives frames: Begin hands out the Context, End renders and then runs
// the engine work deferred during the frame.
type GUI struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithPointerSource replaces the InputState replay used for scrollbar drags
// with a backend that delivers pointer events directly.
func WithPointerSource(src PointerSource) GUIOption {
	return func(g *GUI) { g.ctx.setPointerSource(src) }
}

func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a frame. Pointer moves and releases in input reach active
// scrollbar drags before any widget draws.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.FrameCount++
	ctx.Reset(displaySize, deltaTime)
	ctx.hub.Dispatch(input)
	return ctx
}

// End renders the frame and flushes the context's scheduler. The deferred
// work runs even when rendering fails.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}
	ctx.DrawList.Finalize()
	err := g.renderer.Render(ctx.DrawList)
	ReleaseDrawList(ctx.DrawList)
	ctx.DrawList = nil
	if n := ctx.sched.Flush(); n > 0 && guiVerbose() {
		guiLogger.Debug("deferred work", "frame", ctx.FrameCount, "tasks", n)
	}
	return err
}

// Context returns the frame context. Only valid between Begin and End.
func (g *GUI) Context() *Context { return g.ctx }

func (g *GUI) Style() Style         { return g.style }
func (g *GUI) SetStyle(style Style) { g.style = style }

// Resize forwards a framebuffer size change to the renderer.
func (g *GUI) Resize(width, height int) { g.renderer.Resize(width, height) }
