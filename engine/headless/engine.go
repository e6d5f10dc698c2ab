// Package headless is a pure-Go engine that records the input it receives
// instead of laying out widgets. It runs the imwin loop without a native
// GUI library, which is what tests and offscreen tools want.
package headless

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-theft-auto/imwin"
)

// InputEvent is one call made on the engine's input queue.
type InputEvent struct {
	Kind    string // "key", "char", "mouse-pos", "mouse-button", "wheel", "focus"
	Key     imwin.Key
	Button  imwin.MouseButton
	Down    bool
	Char    rune
	X, Y    float32
	Focused bool
}

func (e InputEvent) String() string {
	switch e.Kind {
	case "key":
		return fmt.Sprintf("key %s %t", e.Key, e.Down)
	case "char":
		return fmt.Sprintf("char %q", e.Char)
	case "mouse-pos":
		return fmt.Sprintf("mouse-pos %g,%g", e.X, e.Y)
	case "mouse-button":
		return fmt.Sprintf("mouse-button %d %t", e.Button, e.Down)
	case "wheel":
		return fmt.Sprintf("wheel %g,%g", e.X, e.Y)
	case "focus":
		return fmt.Sprintf("focus %t", e.Focused)
	default:
		return e.Kind
	}
}

// Engine implements imwin.Engine and imwin.IO.
type Engine struct {
	input *InputState
	style *Style
	log   []InputEvent

	deltaTime       float32
	displaySize     imwin.Vec2
	fbScale         imwin.Vec2
	mousePos        imwin.Vec2
	configFlags     imwin.ConfigFlags
	wantSetMousePos bool
	mouseDrawCursor bool
	cursor          imwin.MouseCursor

	frames  uint64
	inFrame bool
}

var (
	_ imwin.Engine = (*Engine)(nil)
	_ imwin.IO     = (*Engine)(nil)
)

// New creates a headless engine with the default style.
func New() *Engine {
	return &Engine{
		input:   NewInputState(),
		style:   NewStyle(),
		fbScale: imwin.Vec2{X: 1, Y: 1},
		cursor:  imwin.MouseCursorArrow,
	}
}

// Input returns the accumulated input state.
func (e *Engine) Input() *InputState { return e.input }

// Events returns every input call since the last ClearEvents.
func (e *Engine) Events() []InputEvent { return e.log }

// ClearEvents empties the input log.
func (e *Engine) ClearEvents() { e.log = e.log[:0] }

// Frames returns the number of rendered frames.
func (e *Engine) Frames() uint64 { return e.frames }

// DeltaTime returns the last delta time set by the host.
func (e *Engine) DeltaTime() float32 { return e.deltaTime }

// SetConfigFlags replaces the IO config flags.
func (e *Engine) SetConfigFlags(f imwin.ConfigFlags) { e.configFlags = f }

// SetMouseCursor sets the cursor the engine asks the host for.
func (e *Engine) SetMouseCursor(c imwin.MouseCursor) { e.cursor = c }

// SetMouseDrawCursor makes the engine draw its own cursor.
func (e *Engine) SetMouseDrawCursor(v bool) { e.mouseDrawCursor = v }

// RequestMousePos asks the host to move the OS cursor, as keyboard
// navigation does in a full engine. The request lasts one frame.
func (e *Engine) RequestMousePos(pos imwin.Vec2) {
	e.mousePos = pos
	e.wantSetMousePos = true
}

func (e *Engine) IO() imwin.IO           { return e }
func (e *Engine) Style() imwin.StyleData { return e.style }

// NewFrame starts a frame.
func (e *Engine) NewFrame() {
	e.inFrame = true
}

// Render ends the frame, clears per-frame input edges and returns empty
// draw data sized to the display.
func (e *Engine) Render() *imwin.DrawData {
	e.inFrame = false
	e.frames++
	e.input.Reset()
	e.wantSetMousePos = false
	return &imwin.DrawData{
		DisplaySize:      e.displaySize,
		FramebufferScale: e.fbScale,
	}
}

// FontTexture returns a 1x1 white atlas.
func (e *Engine) FontTexture() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.White)
	return img
}

func (e *Engine) Destroy() {}

func (e *Engine) AddKeyEvent(key imwin.Key, down bool) {
	e.log = append(e.log, InputEvent{Kind: "key", Key: key, Down: down})
	e.input.SetKey(key, down)
}

func (e *Engine) AddInputCharacter(c uint32) {
	e.log = append(e.log, InputEvent{Kind: "char", Char: rune(c)})
	if c != 0 {
		e.input.AddInputChar(rune(c))
	}
}

func (e *Engine) AddMousePosEvent(x, y float32) {
	e.log = append(e.log, InputEvent{Kind: "mouse-pos", X: x, Y: y})
	e.mousePos = imwin.Vec2{X: x, Y: y}
	e.input.SetMousePos(x, y)
}

func (e *Engine) AddMouseButtonEvent(button imwin.MouseButton, down bool) {
	e.log = append(e.log, InputEvent{Kind: "mouse-button", Button: button, Down: down})
	e.input.SetMouseButton(button, down)
}

func (e *Engine) AddMouseWheelEvent(h, v float32) {
	e.log = append(e.log, InputEvent{Kind: "wheel", X: h, Y: v})
	e.input.AddMouseWheel(h, v)
}

func (e *Engine) AddFocusEvent(focused bool) {
	e.log = append(e.log, InputEvent{Kind: "focus", Focused: focused})
	if focused {
		e.input.Focused = true
	} else {
		e.input.Blur()
	}
}

func (e *Engine) SetDeltaTime(seconds float32)            { e.deltaTime = seconds }
func (e *Engine) DisplaySize() imwin.Vec2                 { return e.displaySize }
func (e *Engine) SetDisplaySize(size imwin.Vec2)          { e.displaySize = size }
func (e *Engine) DisplayFramebufferScale() imwin.Vec2     { return e.fbScale }
func (e *Engine) SetDisplayFramebufferScale(s imwin.Vec2) { e.fbScale = s }
func (e *Engine) MousePos() imwin.Vec2                    { return e.mousePos }

func (e *Engine) SetMousePos(pos imwin.Vec2) {
	e.mousePos = pos
	e.input.SetMousePos(pos.X, pos.Y)
}

func (e *Engine) ConfigFlags() imwin.ConfigFlags { return e.configFlags }
func (e *Engine) WantSetMousePos() bool          { return e.wantSetMousePos }
func (e *Engine) MouseDrawCursor() bool          { return e.mouseDrawCursor }
func (e *Engine) MouseCursor() imwin.MouseCursor { return e.cursor }
func (e *Engine) IsAnyMouseDown() bool           { return e.input.AnyMouseDown() }
