package imwin

// Event is a window event delivered by a platform backend.
// The set of implementations is closed.
type Event interface {
	isEvent()
}

// Resized reports a new inner size of the window in framebuffer pixels.
type Resized struct {
	Size PhysicalSize
}

// ScaleFactorChanged reports a DPI change, e.g. the window moved to another monitor.
type ScaleFactorChanged struct {
	ScaleFactor  float64
	NewInnerSize PhysicalSize
}

// ModifiersChanged reports the full set of held modifiers.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// KeyboardInput reports a key press, repeat or release.
type KeyboardInput struct {
	Key     Key
	Pressed bool
}

// ReceivedCharacter reports a typed unicode character.
type ReceivedCharacter struct {
	Char rune
}

// CursorMoved reports the cursor position in framebuffer pixels.
type CursorMoved struct {
	Position PhysicalPos
}

// CursorEntered reports the cursor entering the window.
type CursorEntered struct{}

// CursorLeft reports the cursor leaving the window.
type CursorLeft struct{}

// ScrollUnit tells how a wheel delta is measured.
type ScrollUnit int

const (
	ScrollLines ScrollUnit = iota
	ScrollPixels
)

// TouchPhase is the phase of a scroll gesture.
type TouchPhase int

const (
	TouchPhaseStarted TouchPhase = iota
	TouchPhaseMoved
	TouchPhaseEnded
	TouchPhaseCancelled
)

// MouseWheel reports a scroll delta (horizontal, vertical).
type MouseWheel struct {
	Delta Vec2
	Unit  ScrollUnit
	Phase TouchPhase
}

// MouseInput reports a mouse button press or release.
type MouseInput struct {
	Button  MouseButton
	Pressed bool
}

// Focused reports the window gaining or losing keyboard focus.
type Focused struct {
	Focused bool
}

// CloseRequested reports the user asking to close the window.
type CloseRequested struct{}

func (Resized) isEvent()            {}
func (ScaleFactorChanged) isEvent() {}
func (ModifiersChanged) isEvent()   {}
func (KeyboardInput) isEvent()      {}
func (ReceivedCharacter) isEvent()  {}
func (CursorMoved) isEvent()        {}
func (CursorEntered) isEvent()      {}
func (CursorLeft) isEvent()         {}
func (MouseWheel) isEvent()         {}
func (MouseInput) isEvent()         {}
func (Focused) isEvent()            {}
func (CloseRequested) isEvent()     {}
