package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/vgui"
	"github.com/go-theft-auto/vgui/virtual"
)

// GLFWInputAdapter collects GLFW window events into a vgui.InputState.
//
// It is also a vgui.PointerSource: scrollbar drags listen to the cursor and
// button callbacks directly, so a drag keeps tracking while the cursor is
// outside the widget and between frames. Install it with
// vgui.WithPointerSource.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *vgui.InputState
	hub    vgui.PointerHub
}

// NewGLFWInputAdapter registers the adapter's callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  vgui.NewInputState(),
	}
	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Update starts the input of a new frame. Call it before glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *vgui.InputState {
	a.input.Reset()
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	return a.input
}

func (a *GLFWInputAdapter) Input() *vgui.InputState { return a.input }

// PointerTarget implements vgui.PointerSource.
func (a *GLFWInputAdapter) PointerTarget(axis virtual.Axis) virtual.PointerTarget {
	return a.hub.PointerTarget(axis)
}

func (a *GLFWInputAdapter) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToGUIKey(key)
	if k == vgui.KeyNone {
		return
	}
	a.input.ModShift = mods&glfw.ModShift != 0
	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		// held navigation keys keep scrolling
		a.input.SetKey(k, false)
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b := glfwMouseButtonToGUI(button)
	if b < 0 {
		return
	}
	down := action == glfw.Press
	a.input.SetMouseButton(b, down)
	if b == vgui.MouseButtonLeft && !down {
		a.hub.Release()
	}
}

// scrollCallback receives notches from wheels and fractional deltas from
// touchpads; both accumulate until the next frame.
func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.input.SetMousePos(float32(x), float32(y))
	a.hub.Move(vgui.Vec2{X: float32(x), Y: float32(y)})
}

func glfwKeyToGUIKey(key glfw.Key) vgui.Key {
	switch key {
	case glfw.KeyLeft:
		return vgui.KeyLeft
	case glfw.KeyRight:
		return vgui.KeyRight
	case glfw.KeyUp:
		return vgui.KeyUp
	case glfw.KeyDown:
		return vgui.KeyDown
	case glfw.KeyPageUp:
		return vgui.KeyPageUp
	case glfw.KeyPageDown:
		return vgui.KeyPageDown
	case glfw.KeyHome:
		return vgui.KeyHome
	case glfw.KeyEnd:
		return vgui.KeyEnd
	case glfw.KeyEscape:
		return vgui.KeyEscape
	}
	return vgui.KeyNone
}

func glfwMouseButtonToGUI(button glfw.MouseButton) vgui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return vgui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return vgui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return vgui.MouseButtonMiddle
	}
	return -1
}
