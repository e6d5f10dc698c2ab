package imwin

import "fmt"

// Context owns an engine instance and the renderer that draws it.
//
// The engine keeps its IO and style in global objects; Context is the one
// place that hands out access to them, and refuses mutable style access
// while a frame is being built.
type Context struct {
	engine   Engine
	renderer Renderer

	fontTexture uint32
	background  *Color
	theme       *Theme
	clipboard   ClipboardProvider

	inFrame    bool
	destroyed  bool
	frameCount uint64
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithTheme applies a color preset when the context is created.
func WithTheme(t Theme) ContextOption {
	return func(c *Context) { c.theme = &t }
}

// WithBackground clears the framebuffer to color before each frame.
func WithBackground(color Color) ContextOption {
	return func(c *Context) { c.background = &color }
}

// WithClipboard sets the clipboard used by Ui clipboard helpers.
func WithClipboard(cp ClipboardProvider) ContextOption {
	return func(c *Context) { c.clipboard = cp }
}

// NewContext wraps an engine. The renderer may be nil, in which case frames
// are built but not drawn. With a renderer the font atlas is uploaded
// immediately, so the GL context must be current.
func NewContext(engine Engine, renderer Renderer, opts ...ContextOption) (*Context, error) {
	c := &Context{
		engine:    engine,
		renderer:  renderer,
		clipboard: SystemClipboard{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.theme != nil {
		engine.Style().ApplyTheme(*c.theme)
	}

	if renderer != nil {
		if img := engine.FontTexture(); img != nil {
			id, err := renderer.CreateFontTexture(img)
			if err != nil {
				return nil, fmt.Errorf("upload font atlas: %w", err)
			}
			c.fontTexture = id
		}
	}

	return c, nil
}

// Engine returns the wrapped engine.
func (c *Context) Engine() Engine {
	return c.engine
}

// IO returns the engine IO state.
func (c *Context) IO() IO {
	return c.engine.IO()
}

// Style returns mutable access to the engine style. It fails with
// ErrFrameInProgress while a frame is being built.
func (c *Context) Style() (StyleMut, error) {
	if c.destroyed {
		return StyleMut{}, ErrNoContext
	}
	if c.inFrame {
		return StyleMut{}, ErrFrameInProgress
	}
	return StyleMut{Style{data: c.engine.Style()}}, nil
}

// SetSize sets the display size in logical units and the framebuffer
// scale that maps it to pixels.
func (c *Context) SetSize(size LogicalSize, scale float32) {
	io := c.engine.IO()
	io.SetDisplaySize(size.Vec2())
	io.SetDisplayFramebufferScale(Vec2{X: scale, Y: scale})
}

// InFrame reports whether a frame is being built.
func (c *Context) InFrame() bool {
	return c.inFrame
}

// FrameCount returns the number of completed frames.
func (c *Context) FrameCount() uint64 {
	return c.frameCount
}

// FontTextureID returns the texture holding the font atlas, 0 without a renderer.
func (c *Context) FontTextureID() uint32 {
	return c.fontTexture
}

// DoFrame builds one frame with app and draws it.
func (c *Context) DoFrame(app Application) error {
	if c.destroyed {
		return ErrNoContext
	}
	if c.inFrame {
		return ErrFrameInProgress
	}

	if c.renderer != nil && c.background != nil {
		c.renderer.Clear(*c.background)
	}

	dd := c.buildFrame(app)
	c.frameCount++

	if c.renderer == nil {
		return nil
	}
	if err := c.renderer.Render(dd); err != nil {
		return fmt.Errorf("render frame %d: %w", c.frameCount, err)
	}
	return nil
}

func (c *Context) buildFrame(app Application) *DrawData {
	c.inFrame = true
	defer func() { c.inFrame = false }()

	c.engine.NewFrame()
	app.DoUI(&Ui{ctx: c})
	return c.engine.Render()
}

// Destroy releases the renderer and the engine.
func (c *Context) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	if c.renderer != nil {
		c.renderer.Delete()
	}
	c.engine.Destroy()
}

// Ui is the handle an Application gets while building a frame. It is only
// valid during Application.DoUI.
type Ui struct {
	ctx *Context
}

// Style returns read-only access to the engine style.
func (u *Ui) Style() Style {
	return Style{data: u.ctx.engine.Style()}
}

// IO returns the engine IO state.
func (u *Ui) IO() IO {
	return u.ctx.engine.IO()
}

// DisplaySize returns the display size in logical units.
func (u *Ui) DisplaySize() Vec2 {
	return u.ctx.engine.IO().DisplaySize()
}

// FrameCount returns the number of frames completed before this one.
func (u *Ui) FrameCount() uint64 {
	return u.ctx.frameCount
}

// ClipboardText returns the clipboard contents.
func (u *Ui) ClipboardText() string {
	if u.ctx.clipboard == nil {
		return ""
	}
	return u.ctx.clipboard.GetText()
}

// SetClipboardText replaces the clipboard contents.
func (u *Ui) SetClipboardText(text string) {
	if u.ctx.clipboard != nil {
		u.ctx.clipboard.SetText(text)
	}
}
