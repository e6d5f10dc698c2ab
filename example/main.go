// Example opens a window running the Dear ImGui demo, with a small panel
// for switching the theme and the redraw policy.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config example/imwin.yaml -verbose
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/faiface/mainthread"

	"github.com/go-theft-auto/imwin"
	"github.com/go-theft-auto/imwin/backend/opengl"
	"github.com/go-theft-auto/imwin/engine/cimgui"
)

var (
	configPath = flag.String("config", "", "YAML config file")
	verbose    = flag.Bool("verbose", false, "debug logging")
)

func main() {
	flag.Parse()
	imwin.SetVerbose(*verbose)

	var err error
	mainthread.Run(func() {
		err = mainthread.CallErr(run)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (imwin.Config, error) {
	if *configPath == "" {
		return imwin.DefaultConfig(), nil
	}
	return imwin.LoadConfig(*configPath)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	win, err := opengl.NewMainWindow(cfg)
	if err != nil {
		return fmt.Errorf("main window: %w", err)
	}
	defer win.Destroy()

	renderer, err := opengl.NewRenderer(win.API())
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}

	engine, err := cimgui.New(cimgui.WithConfigFlags(imwin.ConfigFlagsNavEnableKeyboard))
	if err != nil {
		renderer.Delete()
		return err
	}

	opts := append(cfg.ContextOptions(), imwin.WithClipboard(win))
	ctx, err := imwin.NewContext(engine, renderer, opts...)
	if err != nil {
		renderer.Delete()
		engine.Destroy()
		return err
	}
	defer ctx.Destroy()

	app := &demo{theme: cfg.Theme, showDemo: true}
	wr := imwin.NewWindowRenderer(win, ctx, app, imwin.WithScheduler(cfg.Scheduler))
	app.wr = wr

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := wr.Run(sigCtx); err != nil && sigCtx.Err() == nil {
		return err
	}
	return nil
}

// demo is the example application.
type demo struct {
	wr       *imwin.WindowRenderer
	theme    imwin.Theme
	pending  *imwin.Theme
	showDemo bool
	rounding float32
}

// BeforeFrame applies a theme picked during the previous frame. The style
// can only be changed between frames.
func (d *demo) BeforeFrame(ctx *imwin.Context) error {
	if d.pending == nil {
		return nil
	}
	style, err := ctx.Style()
	if err != nil {
		return err
	}
	style.SetTheme(*d.pending)
	style.SetFrameRounding(d.rounding)
	d.theme = *d.pending
	d.pending = nil
	return nil
}

func (d *demo) DoUI(ui *imwin.Ui) {
	if d.showDemo {
		imgui.ShowDemoWindowV(&d.showDemo)
	}

	imgui.Begin("imwin")
	defer imgui.End()

	io := ui.IO()
	size := ui.DisplaySize()
	imgui.Text(fmt.Sprintf("display %.0fx%.0f, scale %.2f", size.X, size.Y, io.DisplayFramebufferScale().X))
	imgui.Text(fmt.Sprintf("frame %d, loop %s", ui.FrameCount(), d.wr.ControlFlow()))
	imgui.Text(fmt.Sprintf("frames since input %d", d.wr.Scheduler().FramesSinceInput()))

	imgui.Separator()
	imgui.Text("Theme")
	for _, t := range []imwin.Theme{imwin.ThemeDark, imwin.ThemeLight, imwin.ThemeClassic} {
		imgui.SameLine()
		if imgui.Button(t.String()) && t != d.theme {
			t := t
			d.pending = &t
			d.rounding = ui.Style().FrameRounding()
		}
	}

	imgui.Checkbox("Demo window", &d.showDemo)

	if imgui.Button("Copy frame number") {
		ui.SetClipboardText(fmt.Sprint(ui.FrameCount()))
	}
	imgui.SameLine()
	if imgui.Button("Keep rendering") {
		d.wr.PingUserInput()
	}
}
