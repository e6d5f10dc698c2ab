package imwin

import (
	"context"
	"fmt"
	"time"
)

// Window is a platform window with a current GL context.
type Window interface {
	CursorSetter
	Surface

	// InnerSize returns the drawable size in framebuffer pixels.
	InnerSize() PhysicalSize
	// SetCursorPosition moves the OS cursor, in logical units.
	SetCursorPosition(pos LogicalPos)
	SwapBuffers() error

	// PollEvents returns the events pending now without blocking.
	PollEvents() []Event
	// WaitEvents blocks until at least one event arrives or Wake is called.
	WaitEvents() []Event
	// Wake unblocks WaitEvents. It may be called from any goroutine.
	Wake()
}

// minDeltaTime keeps the engine's frame delta strictly positive.
const minDeltaTime = 1e-6

// WindowRenderer runs the event loop of one window: it feeds window events
// to the engine, draws frames and picks between polling and waiting.
type WindowRenderer struct {
	window    Window
	ctx       *Context
	app       Application
	translate *Translator
	sched     *Scheduler
	cursor    *CursorSync
	now       func() time.Time

	schedCfg SchedulerConfig
	flow     ControlFlow
}

// WindowRendererOption configures a WindowRenderer.
type WindowRendererOption func(*WindowRenderer)

// WithScheduler sets the redraw policy.
func WithScheduler(cfg SchedulerConfig) WindowRendererOption {
	return func(w *WindowRenderer) { w.schedCfg = cfg }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) WindowRendererOption {
	return func(w *WindowRenderer) { w.now = now }
}

// NewWindowRenderer wires a window, an engine context and an application.
// The engine display size is initialized from the window.
func NewWindowRenderer(window Window, ctx *Context, app Application, opts ...WindowRendererOption) *WindowRenderer {
	w := &WindowRenderer{
		window: window,
		ctx:    ctx,
		app:    app,
		cursor: NewCursorSync(),
		now:    time.Now,
		flow:   ControlFlowPoll,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.sched = NewScheduler(w.now(), w.schedCfg)
	w.translate = NewTranslator(ctx.IO(), window, ctx)

	scale := window.ScaleFactor()
	ctx.SetSize(window.InnerSize().ToLogical(scale), float32(sanitizeScale(scale)))

	return w
}

// Context returns the engine context.
func (w *WindowRenderer) Context() *Context {
	return w.ctx
}

// Application returns the application.
func (w *WindowRenderer) Application() Application {
	return w.app
}

// Scheduler returns the redraw scheduler.
func (w *WindowRenderer) Scheduler() *Scheduler {
	return w.sched
}

// PingUserInput keeps the loop rendering as if the user had just
// interacted, e.g. after a slow operation finished.
func (w *WindowRenderer) PingUserInput() {
	w.sched.PingUserInput(w.now())
}

// ControlFlow returns the control flow chosen by the last Step.
func (w *WindowRenderer) ControlFlow() ControlFlow {
	return w.flow
}

// Step runs one loop iteration over a batch of window events and returns
// the control flow for the next one.
func (w *WindowRenderer) Step(events []Event) (ControlFlow, error) {
	io := w.ctx.IO()

	dt := w.sched.NewEvents(w.now()).Seconds()
	io.SetDeltaTime(float32(max(dt, minDeltaTime)))

	for _, ev := range events {
		w.sched.PingUserInput(w.now())
		if w.translate.Translate(ev) == ControlFlowExit {
			w.flow = ControlFlowExit
			return w.flow, nil
		}
	}

	if io.WantSetMousePos() {
		pos := io.MousePos()
		w.window.SetCursorPosition(LogicalPos{X: float64(pos.X), Y: float64(pos.Y)})
	}

	if hook, ok := w.app.(FrameHook); ok {
		if err := hook.BeforeFrame(w.ctx); err != nil {
			w.flow = ControlFlowExit
			return w.flow, fmt.Errorf("before frame: %w", err)
		}
	}

	w.cursor.Sync(io, w.window)
	if err := w.ctx.DoFrame(w.app); err != nil {
		w.flow = ControlFlowExit
		return w.flow, err
	}
	if err := w.window.SwapBuffers(); err != nil {
		w.flow = ControlFlowExit
		return w.flow, fmt.Errorf("swap buffers: %w", err)
	}

	w.flow = w.sched.AfterFrame(w.now(), io.IsAnyMouseDown())
	return w.flow, nil
}

// Run drives the loop until the window is closed, a frame fails, or ctx
// is cancelled. Cancellation wakes a loop blocked waiting for events.
// Wake is never called after Run returns, so the caller may destroy the
// window right away.
func (w *WindowRenderer) Run(ctx context.Context) error {
	done := make(chan struct{})
	stopped := make(chan struct{})
	defer func() {
		close(done)
		<-stopped
	}()
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			w.window.Wake()
		case <-done:
		}
	}()

	flow := ControlFlowPoll
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var events []Event
		if flow == ControlFlowWait {
			events = w.window.WaitEvents()
			if ctx.Err() != nil {
				return ctx.Err()
			}
		} else {
			events = w.window.PollEvents()
		}

		var err error
		flow, err = w.Step(events)
		if err != nil {
			return err
		}
		if flow == ControlFlowExit {
			logger.Info("window closed", "frames", w.ctx.FrameCount())
			return nil
		}
	}
}
