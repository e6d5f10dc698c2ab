package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imwin"
)

// API is the kind of GL context a MainWindow ended up with.
type API int

const (
	APIOpenGL41 API = iota
	APIOpenGL33
	APIGLES30
)

func (a API) String() string {
	switch a {
	case APIOpenGL41:
		return "OpenGL 4.1 core"
	case APIOpenGL33:
		return "OpenGL 3.3 core"
	case APIGLES30:
		return "OpenGL ES 3.0"
	default:
		return fmt.Sprintf("API(%d)", int(a))
	}
}

// GLSLHeader returns the shader preamble for the API.
func (a API) GLSLHeader() string {
	if a == APIGLES30 {
		return "#version 300 es\nprecision mediump float;\n"
	}
	return "#version 330 core\n"
}

// ErrNoGLContext is returned when no GL context could be created.
var ErrNoGLContext = errors.New("opengl: no usable GL context")

type contextAttempt struct {
	api   API
	hints func()
}

var hardwareAttempts = []contextAttempt{
	{APIOpenGL41, func() { desktopHints(4, 1) }},
	{APIOpenGL33, func() { desktopHints(3, 3) }},
}

var glesAttempt = contextAttempt{APIGLES30, func() {
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
}}

// contextAttempts returns the context kinds to try, in order.
func contextAttempts(preferHardware bool) []contextAttempt {
	if !preferHardware {
		return append([]contextAttempt{glesAttempt}, hardwareAttempts...)
	}
	return append(append([]contextAttempt(nil), hardwareAttempts...), glesAttempt)
}

// openContext creates a window for one attempt and makes its context
// current with GL functions loaded. Tests replace it.
var openContext = func(cfg imwin.Config, a contextAttempt) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.DepthBits, 0)
	glfw.WindowHint(glfw.StencilBits, 0)
	glfw.WindowHint(glfw.Samples, 0)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	a.hints()

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.DetachCurrentContext()
		win.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return win, nil
}

// createContext runs the attempts until one yields a window with loaded
// GL functions. A window whose functions fail to load counts as failed.
func createContext(cfg imwin.Config, attempts []contextAttempt, log *slog.Logger) (*glfw.Window, API, error) {
	var lastErr error
	for _, a := range attempts {
		win, err := openContext(cfg, a)
		if err != nil {
			log.Debug("context attempt failed", "api", a.api, "err", err)
			lastErr = err
			continue
		}
		return win, a.api, nil
	}
	if lastErr == nil {
		return nil, 0, ErrNoGLContext
	}
	return nil, 0, fmt.Errorf("%w: %w", ErrNoGLContext, lastErr)
}

func desktopHints(major, minor int) {
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
}

// MainWindow is a GLFW window with a current GL context. It implements
// imwin.Window and imwin.ClipboardProvider. All methods except Wake must
// be called from the main thread.
type MainWindow struct {
	win     *glfw.Window
	api     API
	log     *slog.Logger
	events  []imwin.Event
	mods    imwin.Modifiers
	cursors [imwin.MouseCursorCount]*glfw.Cursor

	destroyed atomic.Bool
}

var (
	_ imwin.Window            = (*MainWindow)(nil)
	_ imwin.ClipboardProvider = (*MainWindow)(nil)
)

// NewMainWindow initializes GLFW and opens a window. Desktop OpenGL is
// tried before OpenGL ES unless cfg.PreferHardware is false.
func NewMainWindow(cfg imwin.Config) (*MainWindow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	log := imwin.Logger().With("component", "window")

	win, api, err := createContext(cfg, contextAttempts(cfg.PreferHardware), log)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	m := &MainWindow{win: win, api: api, log: log}
	m.installCallbacks()

	log.Info("window created",
		"api", api,
		"gl_version", gl.GoStr(gl.GetString(gl.VERSION)),
		"scale", m.ScaleFactor())
	return m, nil
}

func (m *MainWindow) installCallbacks() {
	m.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		m.push(imwin.Resized{Size: imwin.PhysicalSize{Width: width, Height: height}})
	})
	m.win.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		m.push(imwin.ScaleFactorChanged{ScaleFactor: float64(x), NewInnerSize: m.InnerSize()})
	})
	m.win.SetKeyCallback(m.keyCallback)
	m.win.SetCharCallback(func(_ *glfw.Window, char rune) {
		m.push(imwin.ReceivedCharacter{Char: char})
	})
	m.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		m.push(imwin.CursorMoved{Position: m.screenToPhysical(x, y)})
	})
	m.win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			m.push(imwin.CursorEntered{})
		} else {
			m.push(imwin.CursorLeft{})
		}
	})
	m.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		m.push(imwin.MouseWheel{
			Delta: imwin.Vec2{X: float32(xoff), Y: float32(yoff)},
			Unit:  imwin.ScrollLines,
			Phase: imwin.TouchPhaseMoved,
		})
	})
	m.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b := glfwMouseButtonToImwin(button)
		if b < 0 {
			return
		}
		m.push(imwin.MouseInput{Button: b, Pressed: action == glfw.Press})
	})
	m.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		m.push(imwin.Focused{Focused: focused})
	})
	m.win.SetCloseCallback(func(_ *glfw.Window) {
		m.push(imwin.CloseRequested{})
	})
}

func (m *MainWindow) push(ev imwin.Event) {
	m.events = append(m.events, ev)
}

func (m *MainWindow) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	// GLFW reports the modifier state from before the event on some
	// platforms, so fold the key itself in.
	if bit := modifierBit(key); bit != 0 {
		if action == glfw.Release {
			mods &^= bit
		} else {
			mods |= bit
		}
	}
	if next := toModifiers(mods); next != m.mods {
		m.mods = next
		m.push(imwin.ModifiersChanged{Modifiers: next})
	}

	k := glfwKeyToImwin(key)
	if k == imwin.KeyNone {
		return
	}
	m.push(imwin.KeyboardInput{Key: k, Pressed: action != glfw.Release})
}

func (m *MainWindow) drain() []imwin.Event {
	events := m.events
	m.events = nil
	return events
}

// PollEvents processes pending GLFW events and returns them.
func (m *MainWindow) PollEvents() []imwin.Event {
	glfw.PollEvents()
	return m.drain()
}

// WaitEvents blocks until GLFW has an event or Wake is called.
func (m *MainWindow) WaitEvents() []imwin.Event {
	glfw.WaitEvents()
	return m.drain()
}

// Wake unblocks WaitEvents. Safe from any goroutine; a no-op once the
// window is destroyed.
func (m *MainWindow) Wake() {
	if m.destroyed.Load() {
		return
	}
	glfw.PostEmptyEvent()
}

// API returns the context kind that was created.
func (m *MainWindow) API() API {
	return m.api
}

// GLFW returns the underlying window.
func (m *MainWindow) GLFW() *glfw.Window {
	return m.win
}

// ScaleFactor returns the window content scale.
func (m *MainWindow) ScaleFactor() float64 {
	x, _ := m.win.GetContentScale()
	if x <= 0 {
		return 1
	}
	return float64(x)
}

// InnerSize returns the framebuffer size in pixels.
func (m *MainWindow) InnerSize() imwin.PhysicalSize {
	w, h := m.win.GetFramebufferSize()
	return imwin.PhysicalSize{Width: w, Height: h}
}

// ResizeSurface sets the GL viewport. GLFW resizes the default
// framebuffer together with the window.
func (m *MainWindow) ResizeSurface(size imwin.PhysicalSize) {
	gl.Viewport(0, 0, int32(size.Width), int32(size.Height))
}

// screenToPhysical converts GLFW screen coordinates to framebuffer pixels.
func (m *MainWindow) screenToPhysical(x, y float64) imwin.PhysicalPos {
	sx, sy := m.pixelRatio()
	return imwin.PhysicalPos{X: x * sx, Y: y * sy}
}

func (m *MainWindow) pixelRatio() (float64, float64) {
	ww, wh := m.win.GetSize()
	fw, fh := m.win.GetFramebufferSize()
	if ww <= 0 || wh <= 0 || fw <= 0 || fh <= 0 {
		return 1, 1
	}
	return float64(fw) / float64(ww), float64(fh) / float64(wh)
}

// SetCursorPosition moves the OS cursor to a logical position.
func (m *MainWindow) SetCursorPosition(pos imwin.LogicalPos) {
	p := pos.ToPhysical(m.ScaleFactor())
	sx, sy := m.pixelRatio()
	m.win.SetCursorPos(p.X/sx, p.Y/sy)
}

// SetCursorIcon shows a standard cursor. Shapes GLFW 3.3 lacks use the arrow.
func (m *MainWindow) SetCursorIcon(c imwin.MouseCursor) {
	if c < 0 || c >= imwin.MouseCursorCount {
		c = imwin.MouseCursorArrow
	}
	if m.cursors[c] == nil {
		m.cursors[c] = glfw.CreateStandardCursor(standardCursor(c))
	}
	m.win.SetCursor(m.cursors[c])
}

// SetCursorVisible shows or hides the cursor over the window.
func (m *MainWindow) SetCursorVisible(visible bool) {
	if visible {
		m.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		m.win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
}

// SwapBuffers presents the frame.
func (m *MainWindow) SwapBuffers() error {
	m.win.SwapBuffers()
	return nil
}

// GetText returns the clipboard contents.
func (m *MainWindow) GetText() string {
	return glfw.GetClipboardString()
}

// SetText replaces the clipboard contents.
func (m *MainWindow) SetText(text string) {
	glfw.SetClipboardString(text)
}

// Destroy closes the window and terminates GLFW.
func (m *MainWindow) Destroy() {
	if !m.destroyed.CompareAndSwap(false, true) {
		return
	}
	for i, c := range m.cursors {
		if c != nil {
			c.Destroy()
			m.cursors[i] = nil
		}
	}
	m.win.Destroy()
	glfw.Terminate()
	m.log.Debug("window destroyed")
}

func standardCursor(c imwin.MouseCursor) glfw.StandardCursor {
	switch c {
	case imwin.MouseCursorTextInput:
		return glfw.IBeamCursor
	case imwin.MouseCursorResizeNS:
		return glfw.VResizeCursor
	case imwin.MouseCursorResizeEW:
		return glfw.HResizeCursor
	case imwin.MouseCursorHand:
		return glfw.HandCursor
	default:
		return glfw.ArrowCursor
	}
}

func modifierBit(key glfw.Key) glfw.ModifierKey {
	switch key {
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return glfw.ModControl
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return glfw.ModShift
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return glfw.ModAlt
	case glfw.KeyLeftSuper, glfw.KeyRightSuper:
		return glfw.ModSuper
	default:
		return 0
	}
}

func toModifiers(mods glfw.ModifierKey) imwin.Modifiers {
	var m imwin.Modifiers
	if mods&glfw.ModControl != 0 {
		m |= imwin.ModifierCtrl
	}
	if mods&glfw.ModShift != 0 {
		m |= imwin.ModifierShift
	}
	if mods&glfw.ModAlt != 0 {
		m |= imwin.ModifierAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= imwin.ModifierSuper
	}
	return m
}

// glfwMouseButtonToImwin maps GLFW mouse buttons, or returns -1.
func glfwMouseButtonToImwin(button glfw.MouseButton) imwin.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return imwin.MouseButtonLeft
	case glfw.MouseButtonRight:
		return imwin.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return imwin.MouseButtonMiddle
	case glfw.MouseButton4:
		return imwin.MouseButtonX1
	case glfw.MouseButton5:
		return imwin.MouseButtonX2
	default:
		return -1
	}
}
