package headless

import "github.com/go-theft-auto/imwin"

// InputState holds the input the engine has received, with per-frame
// edges: Clicked/Released/Pressed are true for the frame in which the
// transition happened.
type InputState struct {
	MouseX, MouseY float32 // logical units

	mouseDown    [imwin.MouseButtonCount]bool
	mouseClicked [imwin.MouseButtonCount]bool
	mouseUp      [imwin.MouseButtonCount]bool

	// Wheel deltas summed since the last frame.
	MouseWheelX float32
	MouseWheelY float32

	keyDown    [imwin.KeyCount]bool
	keyPressed [imwin.KeyCount]bool
	keyUp      [imwin.KeyCount]bool

	// Characters typed since the last frame.
	InputChars []rune

	Focused bool
}

// NewInputState returns a focused, empty input state.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
		Focused:    true,
	}
}

// Reset drops the edges and text of the frame that just ended.
func (s *InputState) Reset() {
	s.mouseClicked = [imwin.MouseButtonCount]bool{}
	s.mouseUp = [imwin.MouseButtonCount]bool{}
	s.keyPressed = [imwin.KeyCount]bool{}
	s.keyUp = [imwin.KeyCount]bool{}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a button transition. Invalid buttons are ignored.
func (s *InputState) SetMouseButton(button imwin.MouseButton, down bool) {
	if !button.Valid() {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey records a key transition. Keys outside the enum are ignored.
func (s *InputState) SetKey(key imwin.Key, down bool) {
	if key <= imwin.KeyNone || key >= imwin.KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if !down && wasDown {
		s.keyUp[key] = true
	}
}

func (s *InputState) AddMouseWheel(x, y float32) {
	s.MouseWheelX += x
	s.MouseWheelY += y
}

func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// Blur releases everything held, as the engine does when focus is lost.
func (s *InputState) Blur() {
	for b := imwin.MouseButton(0); b < imwin.MouseButtonCount; b++ {
		s.SetMouseButton(b, false)
	}
	for k := imwin.KeyNone + 1; k < imwin.KeyCount; k++ {
		s.SetKey(k, false)
	}
	s.Focused = false
}

// MouseDown reports whether button is held.
func (s *InputState) MouseDown(button imwin.MouseButton) bool {
	return button.Valid() && s.mouseDown[button]
}

func (s *InputState) AnyMouseDown() bool {
	for _, down := range s.mouseDown {
		if down {
			return true
		}
	}
	return false
}

// MouseClicked reports a press during the current frame.
func (s *InputState) MouseClicked(button imwin.MouseButton) bool {
	return button.Valid() && s.mouseClicked[button]
}

func (s *InputState) MouseReleased(button imwin.MouseButton) bool {
	return button.Valid() && s.mouseUp[button]
}

// KeyDown reports whether key is held.
func (s *InputState) KeyDown(key imwin.Key) bool {
	return key > imwin.KeyNone && key < imwin.KeyCount && s.keyDown[key]
}

// KeyPressed and KeyReleased report transitions during the current frame.
func (s *InputState) KeyPressed(key imwin.Key) bool {
	return key > imwin.KeyNone && key < imwin.KeyCount && s.keyPressed[key]
}

func (s *InputState) KeyReleased(key imwin.Key) bool {
	return key > imwin.KeyNone && key < imwin.KeyCount && s.keyUp[key]
}

func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}
