package imwin

// CursorSetter changes the OS cursor of a window.
type CursorSetter interface {
	SetCursorIcon(cursor MouseCursor)
	SetCursorVisible(visible bool)
}

// CursorSync keeps the OS cursor in line with the cursor the engine asks
// for, touching the OS only when the shape changes.
type CursorSync struct {
	current MouseCursor
}

// NewCursorSync assumes the OS starts with a visible arrow.
func NewCursorSync() *CursorSync {
	return &CursorSync{current: MouseCursorArrow}
}

// Current returns the cursor last applied to the OS.
func (c *CursorSync) Current() MouseCursor {
	return c.current
}

// Sync applies the engine's cursor request to win. It does nothing when the
// engine was configured with ConfigFlagsNoMouseCursorChange. It reports
// whether the OS cursor was changed.
func (c *CursorSync) Sync(io IO, win CursorSetter) bool {
	if io.ConfigFlags()&ConfigFlagsNoMouseCursorChange != 0 {
		return false
	}

	want := MouseCursorNone
	if !io.MouseDrawCursor() {
		want = io.MouseCursor()
		if want < MouseCursorNone || want >= MouseCursorCount {
			want = MouseCursorArrow
		}
	}
	if want == c.current {
		return false
	}

	if want == MouseCursorNone {
		win.SetCursorVisible(false)
	} else {
		win.SetCursorIcon(want)
		win.SetCursorVisible(true)
	}
	if verbose() {
		logger.Debug("cursor changed", "from", c.current, "to", want)
	}
	c.current = want
	return true
}
