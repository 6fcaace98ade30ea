package vgui

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key is a navigation key understood by the virtual widgets.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEscape
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:     "--",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyPageUp:   "PgUp",
	KeyPageDown: "PgDn",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyEscape:   "Esc",
}

// KeyName returns a short display name for k.
func KeyName(k Key) string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// InputState is the input of one frame, filled in by a backend adapter.
type InputState struct {
	MouseX, MouseY float32
	prevX, prevY   float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool
	mouseUp      [MouseButtonCount]bool

	// Wheel deltas in notches; positive Y scrolls up.
	MouseWheelX float32
	MouseWheelY float32

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool

	ModShift bool
	ModCtrl  bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears the single-frame events. Call it before collecting the input
// of a new frame.
func (s *InputState) Reset() {
	s.mouseClicked = [MouseButtonCount]bool{}
	s.mouseUp = [MouseButtonCount]bool{}
	s.keyPressed = [KeyCount]bool{}
	s.MouseWheelX, s.MouseWheelY = 0, 0
	s.prevX, s.prevY = s.MouseX, s.MouseY
}

func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX, s.MouseY = x, y
}

// MouseMoved reports whether the pointer moved since the last Reset.
func (s *InputState) MouseMoved() bool {
	return s.MouseX != s.prevX || s.MouseY != s.prevY
}

func (s *InputState) MousePos() Vec2 { return Vec2{X: s.MouseX, Y: s.MouseY} }

// SetMouseButton records a button transition.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	was := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !was {
		s.mouseClicked[button] = true
	}
	if !down && was {
		s.mouseUp[button] = true
	}
}

// SetMouseWheel accumulates wheel deltas; several wheel callbacks may arrive
// within one frame.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX += x
	s.MouseWheelY += y
}

func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	if down && !s.keyDown[key] {
		s.keyPressed[key] = true
	}
	s.keyDown[key] = down
}

func (s *InputState) MouseDown(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouseDown[b]
}

// MouseClicked reports a press that happened this frame.
func (s *InputState) MouseClicked(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouseClicked[b]
}

// MouseReleased reports a release that happened this frame.
func (s *InputState) MouseReleased(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouseUp[b]
}

func (s *InputState) KeyDown(k Key) bool {
	return k > KeyNone && k < KeyCount && s.keyDown[k]
}

func (s *InputState) KeyPressed(k Key) bool {
	return k > KeyNone && k < KeyCount && s.keyPressed[k]
}
