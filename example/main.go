// Example opens a window with a 100 000 x 50 virtual grid next to a virtual
// list with variable row heights. Only the cells inside the viewport and the
// overscan band are drawn each frame.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Scroll with the wheel (Shift for horizontal), drag the scrollbars or use
// the arrow, page and Home/End keys while hovering a view. Escape flips the
// grid between LTR and RTL.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/vgui"
	"github.com/go-theft-auto/vgui/backend/opengl"
	"github.com/go-theft-auto/vgui/virtual"
)

const (
	windowWidth  = 1024
	windowHeight = 640
	windowTitle  = "vgui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fw, fh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fw, fh)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	ui := vgui.New(renderer, vgui.WithStyle(vgui.DefaultStyle()), vgui.WithPointerSource(input))
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) { ui.Resize(w, h) })

	dir := virtual.LTR
	selected := -1
	rowHeight := func(i int) float32 { return float32(18 + i%5*6) }

	for !window.ShouldClose() {
		in := input.Update()
		glfw.PollEvents()
		if in.KeyPressed(vgui.KeyEscape) {
			if dir == virtual.RTL {
				dir = virtual.LTR
			} else {
				dir = virtual.RTL
			}
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(in, vgui.Vec2{X: float32(w), Y: float32(h)}, 1.0/60.0)
		ctx.SetCursorPos(16, 16)
		ctx.Text(fmt.Sprintf("direction %s   selected %d", dir, selected))

		top := ctx.GetCursorPos().Y
		_, err := ctx.VirtualGrid("cells", virtual.GridConfig{
			TotalRow:       100_000,
			TotalColumn:    50,
			RowHeight:      virtual.FixedSize(24),
			ColumnWidth:    virtual.FixedSize(96),
			Width:          float32(w) * 0.6,
			Height:         float32(h) - top - 16,
			Direction:      dir,
			RowCache:       2,
			ColumnCache:    1,
			UseIsScrolling: true,
		}, nil)
		if err != nil {
			return err
		}

		ctx.SetCursorPos(float32(w)*0.6+32, top)
		_, err = ctx.VirtualList("rows", virtual.ListConfig{
			Total:    10_000,
			ItemSize: virtual.DynamicSize(rowHeight, 30),
			Width:    float32(w)*0.4 - 48,
			Height:   float32(h) - top - 16,
			Cache:    3,
		}, func(it vgui.Item) {
			if it.Hovered && in.MouseClicked(vgui.MouseButtonLeft) {
				selected = it.Index
			}
			ctx.AddText(it.Rect.X+4, it.Rect.Y+4, fmt.Sprintf("row %d (%.0fpx)", it.Index, it.Rect.H), ctx.Style().TextColor)
		}, vgui.WithOpt(vgui.OptSelected, selected))
		if err != nil {
			return err
		}

		if err := ui.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		window.SwapBuffers()
	}
	return nil
}
