package imwin_test

import (
	"errors"
	"image"
	"testing"

	"github.com/go-theft-auto/imwin"
	"github.com/go-theft-auto/imwin/engine/headless"
)

// fakeRenderer records renderer calls.
type fakeRenderer struct {
	fontSize    image.Point
	fontErr     error
	renderErr   error
	clears      []imwin.Color
	frames      []*imwin.DrawData
	deleted     bool
	nextTexture uint32
}

func (r *fakeRenderer) CreateFontTexture(img *image.RGBA) (uint32, error) {
	if r.fontErr != nil {
		return 0, r.fontErr
	}
	r.fontSize = img.Rect.Size()
	r.nextTexture++
	return r.nextTexture, nil
}

func (r *fakeRenderer) Clear(c imwin.Color) { r.clears = append(r.clears, c) }

func (r *fakeRenderer) Render(dd *imwin.DrawData) error {
	r.frames = append(r.frames, dd)
	return r.renderErr
}

func (r *fakeRenderer) Delete() { r.deleted = true }

// fakeClipboard is an in-memory clipboard.
type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) GetText() string     { return c.text }
func (c *fakeClipboard) SetText(text string) { c.text = text }

func TestNewContext_UploadsFontAtlas(t *testing.T) {
	renderer := &fakeRenderer{}
	ctx, err := imwin.NewContext(headless.New(), renderer)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if ctx.FontTextureID() != 1 {
		t.Errorf("Expected font texture 1, got %d", ctx.FontTextureID())
	}
	if renderer.fontSize != (image.Point{X: 1, Y: 1}) {
		t.Errorf("Expected 1x1 atlas, got %v", renderer.fontSize)
	}
}

func TestNewContext_FontUploadError(t *testing.T) {
	uploadErr := errors.New("out of memory")
	_, err := imwin.NewContext(headless.New(), &fakeRenderer{fontErr: uploadErr})
	if !errors.Is(err, uploadErr) {
		t.Errorf("Expected wrapped upload error, got %v", err)
	}
}

func TestNewContext_AppliesTheme(t *testing.T) {
	engine := headless.New()
	light := headless.NewStyle()
	light.ApplyTheme(imwin.ThemeLight)

	ctx, err := imwin.NewContext(engine, nil, imwin.WithTheme(imwin.ThemeLight))
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	style, _ := ctx.Style()
	if got, want := style.Color(imwin.ColorWindowBg), light.Color(imwin.ColorWindowBg); got != want {
		t.Errorf("Expected light window background %v, got %v", want, got)
	}
}

func TestContext_DoFrame(t *testing.T) {
	engine := headless.New()
	renderer := &fakeRenderer{}
	ctx, err := imwin.NewContext(engine, renderer)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	ctx.SetSize(imwin.LogicalSize{Width: 640, Height: 480}, 2)

	var seen []uint64
	app := imwin.ApplicationFunc(func(ui *imwin.Ui) {
		seen = append(seen, ui.FrameCount())
		if got := ui.DisplaySize(); got != (imwin.Vec2{X: 640, Y: 480}) {
			t.Errorf("Expected display 640x480, got %v", got)
		}
	})

	for i := 0; i < 3; i++ {
		if err := ctx.DoFrame(app); err != nil {
			t.Fatalf("DoFrame %d: %v", i, err)
		}
	}

	if len(seen) != 3 || seen[0] != 0 || seen[2] != 2 {
		t.Errorf("Expected frame counts [0 1 2], got %v", seen)
	}
	if ctx.FrameCount() != 3 || engine.Frames() != 3 {
		t.Errorf("Expected 3 frames, got context %d engine %d", ctx.FrameCount(), engine.Frames())
	}
	if len(renderer.frames) != 3 {
		t.Fatalf("Expected 3 rendered frames, got %d", len(renderer.frames))
	}
	fb := renderer.frames[0].FramebufferSize()
	if fb.Width != 1280 || fb.Height != 960 {
		t.Errorf("Expected 1280x960 framebuffer, got %dx%d", fb.Width, fb.Height)
	}
	if len(renderer.clears) != 0 {
		t.Errorf("Expected no clears without a background, got %d", len(renderer.clears))
	}
}

func TestContext_DoFrameClearsBackground(t *testing.T) {
	renderer := &fakeRenderer{}
	bg := imwin.RGBA(10, 20, 30, 255)
	ctx, _ := imwin.NewContext(headless.New(), renderer, imwin.WithBackground(bg))

	if err := ctx.DoFrame(imwin.ApplicationFunc(func(*imwin.Ui) {})); err != nil {
		t.Fatalf("DoFrame: %v", err)
	}
	if len(renderer.clears) != 1 || renderer.clears[0] != bg {
		t.Errorf("Expected one clear to %v, got %v", bg, renderer.clears)
	}
}

func TestContext_StyleRefusedDuringFrame(t *testing.T) {
	ctx, _ := imwin.NewContext(headless.New(), nil)

	var inFrameErr error
	var readOnly imwin.Color
	app := imwin.ApplicationFunc(func(ui *imwin.Ui) {
		if !ctx.InFrame() {
			t.Error("Expected InFrame during DoUI")
		}
		_, inFrameErr = ctx.Style()
		readOnly = ui.Style().Color(imwin.ColorText)
	})

	if err := ctx.DoFrame(app); err != nil {
		t.Fatalf("DoFrame: %v", err)
	}
	if !errors.Is(inFrameErr, imwin.ErrFrameInProgress) {
		t.Errorf("Expected ErrFrameInProgress, got %v", inFrameErr)
	}
	if readOnly != imwin.ColorWhite {
		t.Errorf("Expected read-only access to text color, got %v", readOnly)
	}

	if ctx.InFrame() {
		t.Error("Expected frame finished")
	}
	if _, err := ctx.Style(); err != nil {
		t.Errorf("Expected style access after the frame, got %v", err)
	}
}

func TestContext_NestedFrameRefused(t *testing.T) {
	ctx, _ := imwin.NewContext(headless.New(), nil)

	var nestedErr error
	app := imwin.ApplicationFunc(func(*imwin.Ui) {
		nestedErr = ctx.DoFrame(imwin.ApplicationFunc(func(*imwin.Ui) {}))
	})
	if err := ctx.DoFrame(app); err != nil {
		t.Fatalf("DoFrame: %v", err)
	}
	if !errors.Is(nestedErr, imwin.ErrFrameInProgress) {
		t.Errorf("Expected ErrFrameInProgress for a nested frame, got %v", nestedErr)
	}
}

func TestContext_FrameStateResetAfterPanic(t *testing.T) {
	ctx, _ := imwin.NewContext(headless.New(), nil)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected the panic to propagate")
			}
		}()
		ctx.DoFrame(imwin.ApplicationFunc(func(*imwin.Ui) { panic("boom") }))
	}()

	if ctx.InFrame() {
		t.Error("Expected frame state cleared after a panic")
	}
}

func TestContext_RenderErrorWrapped(t *testing.T) {
	gpuErr := errors.New("device lost")
	ctx, _ := imwin.NewContext(headless.New(), &fakeRenderer{renderErr: gpuErr})

	err := ctx.DoFrame(imwin.ApplicationFunc(func(*imwin.Ui) {}))
	if !errors.Is(err, gpuErr) {
		t.Errorf("Expected wrapped render error, got %v", err)
	}
}

func TestContext_Destroy(t *testing.T) {
	renderer := &fakeRenderer{}
	ctx, _ := imwin.NewContext(headless.New(), renderer)

	ctx.Destroy()
	ctx.Destroy()

	if !renderer.deleted {
		t.Error("Expected renderer deleted")
	}
	if _, err := ctx.Style(); !errors.Is(err, imwin.ErrNoContext) {
		t.Errorf("Expected ErrNoContext from Style, got %v", err)
	}
	if err := ctx.DoFrame(imwin.ApplicationFunc(func(*imwin.Ui) {})); !errors.Is(err, imwin.ErrNoContext) {
		t.Errorf("Expected ErrNoContext from DoFrame, got %v", err)
	}
}

func TestUi_Clipboard(t *testing.T) {
	cb := &fakeClipboard{text: "before"}
	ctx, _ := imwin.NewContext(headless.New(), nil, imwin.WithClipboard(cb))

	var read string
	ctx.DoFrame(imwin.ApplicationFunc(func(ui *imwin.Ui) {
		read = ui.ClipboardText()
		ui.SetClipboardText("after")
	}))

	if read != "before" {
		t.Errorf("Expected to read %q, got %q", "before", read)
	}
	if cb.text != "after" {
		t.Errorf("Expected clipboard %q, got %q", "after", cb.text)
	}
}
