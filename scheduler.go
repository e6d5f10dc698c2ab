package imwin

import (
	"math"
	"time"
)

// Default redraw policy: keep rendering for this long, or this many
// frames, after the last input, whichever lasts longer. The frame count
// matters when a slow operation triggered by the input blocks the loop
// for longer than the linger time: we still want a few frames after it.
const (
	DefaultInputLinger = time.Second
	DefaultInputFrames = 60
)

// SchedulerConfig tunes the redraw policy. Zero values select the defaults.
type SchedulerConfig struct {
	InputLinger time.Duration `yaml:"input_linger"`
	InputFrames uint32        `yaml:"input_frames"`
}

func (c SchedulerConfig) withDefaults() SchedulerConfig {
	if c.InputLinger <= 0 {
		c.InputLinger = DefaultInputLinger
	}
	if c.InputFrames == 0 {
		c.InputFrames = DefaultInputFrames
	}
	return c
}

// Scheduler decides after each frame whether the loop keeps polling or
// blocks until the next OS event.
type Scheduler struct {
	cfg            SchedulerConfig
	lastFrame      time.Time
	lastInputTime  time.Time
	lastInputFrame uint32
	last           ControlFlow
}

// NewScheduler creates a scheduler whose clocks start at now. A fresh
// scheduler polls, as if input had just arrived.
func NewScheduler(now time.Time, cfg SchedulerConfig) *Scheduler {
	return &Scheduler{
		cfg:           cfg.withDefaults(),
		lastFrame:     now,
		lastInputTime: now,
		last:          ControlFlowPoll,
	}
}

// Config returns the effective configuration.
func (s *Scheduler) Config() SchedulerConfig {
	return s.cfg
}

// NewEvents marks the start of a loop iteration and returns the time
// elapsed since the previous one.
func (s *Scheduler) NewEvents(now time.Time) time.Duration {
	delta := now.Sub(s.lastFrame)
	s.lastFrame = now
	return delta
}

// PingUserInput restarts the responsive window.
func (s *Scheduler) PingUserInput(now time.Time) {
	s.lastInputTime = now
	s.lastInputFrame = 0
}

// FramesSinceInput returns how many frames were rendered since the last input.
func (s *Scheduler) FramesSinceInput() uint32 {
	return s.lastInputFrame
}

// AfterFrame counts the rendered frame and returns the control flow for
// the next iteration. A held mouse button forces polling since the user
// may be dragging.
func (s *Scheduler) AfterFrame(now time.Time, anyMouseDown bool) ControlFlow {
	if s.lastInputFrame < math.MaxUint32 {
		s.lastInputFrame++
	}

	flow := ControlFlowWait
	if anyMouseDown ||
		now.Sub(s.lastInputTime) < s.cfg.InputLinger ||
		s.lastInputFrame < s.cfg.InputFrames {
		flow = ControlFlowPoll
	}

	if flow != s.last && verbose() {
		logger.Debug("control flow changed", "from", s.last, "to", flow,
			"frames_since_input", s.lastInputFrame)
	}
	s.last = flow
	return flow
}
