package imwin

import "image"

// Renderer draws engine output into the current GL context.
type Renderer interface {
	// CreateFontTexture uploads the engine font atlas and returns its texture ID.
	// Draw commands with TextureID 0 sample this texture.
	CreateFontTexture(img *image.RGBA) (uint32, error)
	// Clear fills the framebuffer with a color.
	Clear(c Color)
	// Render draws one frame of engine output.
	Render(dd *DrawData) error
	// Delete releases GPU resources.
	Delete()
}

// Application builds the UI each frame.
type Application interface {
	DoUI(ui *Ui)
}

// ApplicationFunc adapts a function to the Application interface.
type ApplicationFunc func(ui *Ui)

// DoUI calls f(ui).
func (f ApplicationFunc) DoUI(ui *Ui) {
	f(ui)
}

// FrameHook is implemented by applications that need the mutable context
// between frames, e.g. to switch the style theme. WindowRenderer calls
// BeforeFrame after translating events and before the frame starts.
type FrameHook interface {
	BeforeFrame(ctx *Context) error
}
