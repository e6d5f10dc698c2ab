// Command gen renders the Dear ImGui demo once per built-in theme, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/imwin"
	"github.com/go-theft-auto/imwin/backend/opengl"
	"github.com/go-theft-auto/imwin/engine/cimgui"
)

var (
	outDir = flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	frames = flag.Int("frames", 3, "frames to render before capturing")
)

func main() {
	flag.Parse()

	var err error
	mainthread.Run(func() {
		err = mainthread.CallErr(run)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := imwin.DefaultConfig()
	cfg.Title = "screenshot-gen"
	cfg.Width, cfg.Height = 800, 600
	cfg.Hidden = true
	cfg.VSync = false

	win, err := opengl.NewMainWindow(cfg)
	if err != nil {
		return fmt.Errorf("main window: %w", err)
	}
	defer win.Destroy()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	themes := []imwin.Theme{imwin.ThemeDark, imwin.ThemeLight, imwin.ThemeClassic}
	for _, theme := range themes {
		path := filepath.Join(*outDir, "theme-"+theme.String()+".jpg")
		size, err := capture(win, cfg, theme, path)
		if err != nil {
			return fmt.Errorf("capture %s: %w", theme, err)
		}
		fmt.Printf("  %s (%dx%d)\n", filepath.Base(path), size.Width, size.Height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(themes), *outDir)
	return nil
}

// capture renders a fresh engine context with the given theme and saves
// the framebuffer to path.
func capture(win *opengl.MainWindow, cfg imwin.Config, theme imwin.Theme, path string) (imwin.PhysicalSize, error) {
	renderer, err := opengl.NewRenderer(win.API())
	if err != nil {
		return imwin.PhysicalSize{}, err
	}
	engine, err := cimgui.New()
	if err != nil {
		renderer.Delete()
		return imwin.PhysicalSize{}, err
	}

	bg, _ := cfg.BackgroundColor()
	ctx, err := imwin.NewContext(engine, renderer, imwin.WithTheme(theme), imwin.WithBackground(bg))
	if err != nil {
		renderer.Delete()
		engine.Destroy()
		return imwin.PhysicalSize{}, err
	}
	defer ctx.Destroy()

	size := win.InnerSize()
	scale := win.ScaleFactor()
	ctx.SetSize(size.ToLogical(scale), float32(scale))
	ctx.IO().SetDeltaTime(1.0 / 60.0)

	app := imwin.ApplicationFunc(func(ui *imwin.Ui) {
		display := ui.DisplaySize()
		imgui.SetNextWindowPos(imgui.Vec2{X: 0, Y: 0})
		imgui.SetNextWindowSize(imgui.Vec2{X: display.X, Y: display.Y})
		imgui.ShowDemoWindow()
	})

	for i := 0; i < *frames; i++ {
		if err := ctx.DoFrame(app); err != nil {
			return size, err
		}
	}

	img := readPixels(size)

	f, err := os.Create(path)
	if err != nil {
		return size, err
	}
	defer f.Close()
	return size, jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// readPixels copies the back buffer into an image, flipping it vertically
// since OpenGL's origin is bottom-left.
func readPixels(size imwin.PhysicalSize) *image.RGBA {
	w, h := size.Width, size.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rowLen := w * 4
	for y := 0; y < h; y++ {
		src := (h - 1 - y) * rowLen
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], pixels[src:src+rowLen])
	}
	return img
}
