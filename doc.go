/*
Package imwin hosts an immediate-mode GUI engine in a GLFW window with an
OpenGL context.

The engine (Dear ImGui through engine/cimgui, or the pure-Go engine/headless)
owns layout, widgets and its own IO and style objects. This package sits
between that engine and the window:

  - Translator turns window events (keys, mouse, scroll, focus, resize,
    DPI changes) into engine input events, converting physical pixels to
    logical units.
  - Scheduler picks, after each frame, between polling continuously and
    blocking until the next event.
  - CursorSync keeps the OS cursor in line with the one the engine asks for.
  - Context and Ui hand out the engine style: StyleMut outside a frame,
    read-only Style inside one.
  - WindowRenderer ties them into the event loop.

# Quick Start

	cfg := imwin.DefaultConfig()
	win, err := opengl.NewMainWindow(cfg)
	if err != nil {
	    return err
	}
	defer win.Destroy()

	renderer, err := opengl.NewRenderer(win.API())
	if err != nil {
	    return err
	}
	engine, err := cimgui.New()
	if err != nil {
	    return err
	}
	ctx, err := imwin.NewContext(engine, renderer, cfg.ContextOptions()...)
	if err != nil {
	    return err
	}
	defer ctx.Destroy()

	app := imwin.ApplicationFunc(func(ui *imwin.Ui) {
	    imgui.ShowDemoWindow()
	})
	wr := imwin.NewWindowRenderer(win, ctx, app, imwin.WithScheduler(cfg.Scheduler))
	return wr.Run(context.Background())

# Redraw Policy

After every frame the loop keeps polling while a mouse button is held (the
user may be dragging), for InputLinger after the last input, and for at
least InputFrames frames after it. The frame count covers the case where
the input triggered something slow: the loop still renders right after
it finishes. Otherwise the loop sleeps in WaitEvents, so an idle window
costs no CPU.

# Threads

GLFW and the GL context must be used from the main OS thread. Commands in
this module run their loop through github.com/faiface/mainthread.
*/
package imwin
