package imwin

import "math"

// Surface is the part of a window the translator needs: its DPI scale and
// a way to resize the GL surface.
type Surface interface {
	ScaleFactor() float64
	ResizeSurface(size PhysicalSize)
}

// Sizer receives display size changes in logical units.
type Sizer interface {
	SetSize(size LogicalSize, scale float32)
}

// Translator turns window events into engine input events.
type Translator struct {
	io      IO
	surface Surface
	sizer   Sizer
}

// NewTranslator creates a translator writing into io. Scale factor changes
// are reported to sizer, which owns display size and framebuffer scale.
func NewTranslator(io IO, surface Surface, sizer Sizer) *Translator {
	return &Translator{io: io, surface: surface, sizer: sizer}
}

// Translate applies one event to the engine. It returns ControlFlowExit
// for a close request and ControlFlowPoll otherwise.
func (t *Translator) Translate(ev Event) ControlFlow {
	io := t.io

	switch e := ev.(type) {
	case CloseRequested:
		return ControlFlowExit

	case Resized:
		// GL surface in physical pixels, engine in logical
		if !e.Size.Empty() {
			t.surface.ResizeSurface(e.Size)
		}
		io.SetDisplaySize(e.Size.ToLogical(t.surface.ScaleFactor()).Vec2())
		if verbose() {
			logger.Debug("resized", "width", e.Size.Width, "height", e.Size.Height)
		}

	case ScaleFactorChanged:
		scale := float32(sanitizeScale(e.ScaleFactor))
		oldScale := io.DisplayFramebufferScale().X
		if pos := io.MousePos(); mouseAvailable(pos) && oldScale > 0 {
			io.SetMousePos(pos.Mul(scale / oldScale))
		}
		t.sizer.SetSize(e.NewInnerSize.ToLogical(float64(scale)), scale)
		if verbose() {
			logger.Debug("scale factor changed", "old", oldScale, "new", scale)
		}

	case ModifiersChanged:
		io.AddKeyEvent(KeyModCtrl, e.Modifiers.Ctrl())
		io.AddKeyEvent(KeyModShift, e.Modifiers.Shift())
		io.AddKeyEvent(KeyModAlt, e.Modifiers.Alt())
		io.AddKeyEvent(KeyModSuper, e.Modifiers.Super())

	case KeyboardInput:
		if e.Key <= KeyNone || e.Key >= KeyCount {
			return ControlFlowPoll
		}
		io.AddKeyEvent(e.Key, e.Pressed)
		if mod := e.Key.Modifier(); mod != KeyNone {
			io.AddKeyEvent(mod, e.Pressed)
		}

	case ReceivedCharacter:
		io.AddInputCharacter(uint32(e.Char))

	case CursorMoved:
		pos := e.Position.ToLogical(t.surface.ScaleFactor())
		io.AddMousePosEvent(float32(pos.X), float32(pos.Y))

	case MouseWheel:
		if e.Phase == TouchPhaseMoved {
			io.AddMouseWheelEvent(e.Delta.X, e.Delta.Y)
		}

	case MouseInput:
		if e.Button.Valid() {
			io.AddMouseButtonEvent(e.Button, e.Pressed)
		}

	case CursorLeft:
		io.AddMousePosEvent(mouseUnavailable, mouseUnavailable)

	case Focused:
		io.AddFocusEvent(e.Focused)
	}

	return ControlFlowPoll
}

// mouseUnavailable is the coordinate the engine reads as "no mouse".
const mouseUnavailable = -math.MaxFloat32

func mouseAvailable(pos Vec2) bool {
	return pos.Finite() && pos.X > mouseUnavailable/2 && pos.Y > mouseUnavailable/2
}
